package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lifesaver/pkg/e"
	"lifesaver/pkg/validator"
)

const maxBodyBytes = 1 << 20

// BindJSON strictly decodes a single JSON object from the request body into
// dst and validates it. Failures wrap e.ErrInvalidInput.
func BindJSON[T any](w http.ResponseWriter, r *http.Request, dst *T) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", e.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("invalid JSON: trailing data: %w", e.ErrInvalidInput)
	}

	if err := validator.ValidateStruct(dst); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), e.ErrInvalidInput)
	}
	return nil
}
