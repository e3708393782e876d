package mapping_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itam-labs/assetdesk/pkg/mapping"
)

func TestNullString(t *testing.T) {
	assert.False(t, mapping.ValueToSQLNullString("").Valid)
	assert.Equal(t, sql.NullString{String: "HQ", Valid: true}, mapping.ValueToSQLNullString("HQ"))
	assert.Equal(t, "", mapping.SQLNullStringToValue(sql.NullString{}))
	assert.Equal(t, "HQ", mapping.SQLNullStringToValue(sql.NullString{String: "HQ", Valid: true}))
}

func TestDateConversions(t *testing.T) {
	parsed := mapping.DateToSQLNullTime("2024-03-01")
	assert.True(t, parsed.Valid)
	assert.Equal(t, "2024-03-01", mapping.SQLNullTimeToDate(parsed))

	assert.False(t, mapping.DateToSQLNullTime("").Valid)
	assert.False(t, mapping.DateToSQLNullTime("03/01/2024").Valid, "unparseable dates map to NULL")
	assert.Equal(t, "", mapping.SQLNullTimeToDate(sql.NullTime{}))
}

func TestTimestampConversions(t *testing.T) {
	ts := mapping.TimestampToSQLNullTime("2024-03-01T10:30:00Z")
	assert.True(t, ts.Valid)
	assert.Equal(t, "2024-03-01T10:30:00Z", mapping.SQLNullTimeToRFC3339(ts))

	// A bare date is accepted as a fallback.
	assert.True(t, mapping.TimestampToSQLNullTime("2024-03-01").Valid)
}

func TestNullFloat(t *testing.T) {
	assert.False(t, mapping.ValueToSQLNullFloat64(0).Valid, "zero cost is stored as NULL")
	assert.Equal(t, 1499.99, mapping.SQLNullFloat64ToValue(mapping.ValueToSQLNullFloat64(1499.99)))
}

func TestTimeToRFC3339(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01T10:30:00Z", mapping.TimeToRFC3339(at))
}
