package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/service"
	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/MKhiriev/mesto-api/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []struct {
	target   error
	response errorResponse
}{
	{validators.ErrInvalidID, errorResponse{http.StatusBadRequest, MessageInvalidID}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, MessageInvalidData}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, MessageInvalidData}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, MessageWrongCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, MessageUnauthorized}},
	{service.ErrForbidden, errorResponse{http.StatusForbidden, MessageForbidden}},
	{service.ErrUserNotFound, errorResponse{http.StatusNotFound, MessageNotFound}},
	{service.ErrCardNotFound, errorResponse{http.StatusNotFound, MessageNotFound}},
	{service.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, MessageEmailTaken}},
}

// responseFromError maps an error to the status code and message sent to the
// client. Validation errors carry their own aggregated message; anything
// unknown becomes a generic 500.
func responseFromError(err error) errorResponse {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return errorResponse{http.StatusBadRequest, validationErr.Error()}
	}

	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.response
		}
	}

	return errorResponse{http.StatusInternalServerError, MessageInternalError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the mapped JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	writeMessage(w, r, resp.message, resp.status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteError(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
