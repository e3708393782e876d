package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/pkg/httpapi"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", serrors.New(serrors.KindInvalidInput, "bad"), http.StatusBadRequest},
		{"empty file", serrors.New(serrors.KindEmptyOrInvalidFile, "empty"), http.StatusBadRequest},
		{"no valid records", serrors.New(serrors.KindNoValidRecords, "none"), http.StatusBadRequest},
		{"conflict", serrors.New(serrors.KindConflict, "dupe"), http.StatusConflict},
		{"connection", serrors.New(serrors.KindConnection, "down"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped kind", errors.Wrap(serrors.New(serrors.KindConflict, "dupe"), "outer"), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpapi.StatusFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := httpapi.WriteError(rec, http.StatusConflict, "Failed to create asset", serrors.New(serrors.KindConflict, "asset tag already exists"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Failed to create asset","error":"ConflictError: asset tag already exists"}`, rec.Body.String())
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader("{not json"))
	var dst map[string]any
	err := httpapi.DecodeJSON(req, &dst)
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindInvalidInput))
}
