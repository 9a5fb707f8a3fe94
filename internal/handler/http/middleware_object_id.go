package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/validators"
)

// withObjectID rejects requests whose path parameter param is not a
// 24-character hexadecimal identity with 400 [MessageInvalidID].
func withObjectID(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)
			if err := validators.ValidateID(id); err != nil {
				logger.FromRequest(r).Debug().Str(param, id).Msg("malformed identity in path")
				writeMessage(w, r, MessageInvalidID, http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
