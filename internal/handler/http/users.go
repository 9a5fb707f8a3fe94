package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/MKhiriev/mesto-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	h.writeUser(w, r, chi.URLParam(r, userIDParam))
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	h.writeUser(w, r, userID)
}

func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, userID string) {
	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	req, err := bindJSON[models.UpdateProfileRequest](r, h.validator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	user, err := h.services.UserService.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	req, err := bindJSON[models.UpdateAvatarRequest](r, h.validator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	user, err := h.services.UserService.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}
