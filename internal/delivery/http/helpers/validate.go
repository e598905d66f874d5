package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gothamai/internal/domain"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 10 << 20

// DecodeJSON decodes the request body into dest, rejecting unknown fields and
// trailing data. Malformed input comes back as a *domain.ValidationError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return domain.NewValidationError("Request body must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		timeErr   *time.ParseError
		maxBytes  *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("Request body is required")
	case errors.As(err, &maxBytes):
		return err
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("Malformed JSON in request body")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return domain.NewValidationError("Request body must be a JSON object")
		}
		return domain.NewValidationError(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.Kind()))
	case errors.As(err, &timeErr):
		return domain.NewValidationError("Dates must be RFC 3339 timestamps")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		return domain.NewValidationError("Unknown field " + field)
	default:
		return domain.NewValidationError(err.Error())
	}
}
