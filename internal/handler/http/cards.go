package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/MKhiriev/mesto-api/models"
)

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.services.CardService.ListCards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, cards, http.StatusOK)
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	req, err := bindJSON[models.CreateCardRequest](r, h.validator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	card, err := h.services.CardService.CreateCard(r.Context(), req.Card(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, card, http.StatusOK)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	h.changeCard(w, r, h.services.CardService.DeleteCard)
}

func (h *Handler) likeCard(w http.ResponseWriter, r *http.Request) {
	h.changeCard(w, r, h.services.CardService.LikeCard)
}

func (h *Handler) dislikeCard(w http.ResponseWriter, r *http.Request) {
	h.changeCard(w, r, h.services.CardService.DislikeCard)
}

// changeCard applies change to the card named in the path on behalf of the
// authenticated user and responds with the resulting card.
func (h *Handler) changeCard(w http.ResponseWriter, r *http.Request,
	change func(ctx context.Context, cardID, userID string) (models.Card, error),
) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	card, err := change(r.Context(), chi.URLParam(r, cardIDParam), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, card, http.StatusOK)
}
