package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/itam-labs/assetdesk/pkg/serrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate exposes the shared validator instance for request DTOs.
func Validate(v any) error {
	return validate.Struct(v)
}

// ErrorEnvelope standardizes JSON error responses. Message is the
// human-readable summary; Error carries the underlying kind + message the way
// the setup wizard surfaces fatal failures.
type ErrorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, err error) error {
	envelope := &ErrorEnvelope{Message: message}
	if err != nil {
		envelope.Error = err.Error()
	}
	return WriteJSON(w, status, envelope)
}

// StatusFor maps an error kind to an HTTP status code.
func StatusFor(err error) int {
	switch serrors.KindOf(err) {
	case serrors.KindInvalidInput, serrors.KindEmptyOrInvalidFile, serrors.KindNoValidRecords:
		return http.StatusBadRequest
	case serrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON reads a JSON request body into dst, classifying malformed input.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(err, serrors.KindInvalidInput, "malformed JSON body")
	}
	return nil
}
