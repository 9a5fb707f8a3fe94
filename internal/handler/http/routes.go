package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	userIDParam = "userId"
	cardIDParam = "cardId"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/signin", h.signin)
		r.Post("/users", h.signup)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization; path identities are checked after the token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Get("/users/me", h.getCurrentUser)
		r.Patch("/users/me", h.updateProfile)
		r.Patch("/users/me/avatar", h.updateAvatar)
		r.With(withObjectID(userIDParam)).Get("/users/{userId}", h.getUser)

		r.Get("/cards", h.listCards)
		r.Post("/cards", h.createCard)
		r.Group(func(r chi.Router) {
			r.Use(withObjectID(cardIDParam))
			r.Delete("/cards/{cardId}", h.deleteCard)
			r.Put("/cards/{cardId}/likes", h.likeCard)
			r.Delete("/cards/{cardId}/likes", h.dislikeCard)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, MessageRouteNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
