package mapping

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// ValueToSQLNullString treats the empty string as NULL.
func ValueToSQLNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func SQLNullStringToValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func PointerToSQLNullInt32(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func SQLNullInt32ToPointer(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func ValueToSQLNullFloat64(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}

func SQLNullFloat64ToValue(v sql.NullFloat64) float64 {
	if !v.Valid {
		return 0
	}
	return v.Float64
}

// DateToSQLNullTime parses a YYYY-MM-DD string, mapping the empty string and
// unparseable input to NULL.
func DateToSQLNullTime(s string) sql.NullTime {
	if s == "" {
		return sql.NullTime{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func SQLNullTimeToDate(v sql.NullTime) string {
	if !v.Valid {
		return ""
	}
	return v.Time.Format(dateLayout)
}

// TimestampToSQLNullTime parses RFC 3339, falling back to YYYY-MM-DD.
func TimestampToSQLNullTime(s string) sql.NullTime {
	if s == "" {
		return sql.NullTime{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return sql.NullTime{Time: t, Valid: true}
	}
	return DateToSQLNullTime(s)
}

func SQLNullTimeToRFC3339(v sql.NullTime) string {
	if !v.Valid {
		return ""
	}
	return v.Time.UTC().Format(time.RFC3339)
}

func TimeToRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
