package http

import (
	"net/http"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/models"
)

// signup registers a user and responds with its public shape.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	req, err := bindJSON[models.SignupRequest](r, h.validator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(r.Context(), req.User())
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", registeredUser.ID).Msg("user registered")
	writeJSON(w, r, registeredUser, http.StatusCreated)
}

// signin checks the credentials and responds with a token.
func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := bindJSON[models.SigninRequest](r, h.validator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", foundUser.ID).Msg("user successfully logged in")
	writeJSON(w, r, models.TokenResponse{Token: token.String()}, http.StatusOK)
}
