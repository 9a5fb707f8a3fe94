package http

import (
	"net/http"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the
// authenticated user's ID in the request context with [utils.WithUserID]
// before delegating to the next handler.
//
// Any failure is answered with 401 and the message [MessageUnauthorized]:
// a missing header ([ErrEmptyAuthorizationHeader]), a header that is not
// "Bearer <token>" ([ErrInvalidAuthorizationHeader]) or a token that is
// expired, forged or malformed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeMessage(w, r, MessageUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			writeMessage(w, r, MessageUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			writeMessage(w, r, MessageUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
