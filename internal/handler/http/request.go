package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/mesto-api/internal/validators"
)

// maxBodySize limits request bodies; every body of this API is a small object.
const maxBodySize = 1 << 20

// bindJSON decodes the body of r into a T and validates it. Unknown fields
// are rejected.
func bindJSON[T any](r *http.Request, v validators.Validator) (T, error) {
	var req T

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := v.Validate(r.Context(), req); err != nil {
		return req, err
	}

	return req, nil
}
