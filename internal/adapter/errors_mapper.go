package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/mesto-api/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    responseMessage(resp),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusConflict:
		apiErr.kind = ErrConflict
	case http.StatusInternalServerError:
		apiErr.kind = ErrInternalServerError
	}

	return apiErr
}

func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
