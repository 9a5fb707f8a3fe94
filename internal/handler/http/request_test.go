package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mesto-api/internal/validators"
	"github.com/MKhiriev/mesto-api/models"
)

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		wantInvalidJSON bool
		wantValidation  bool
	}{
		{name: "valid body", body: `{"name":"Архыз","link":"https://example.com/a.jpg"}`},
		{name: "unknown field", body: `{"name":"Архыз","link":"https://example.com/a.jpg","owner":"x"}`, wantInvalidJSON: true},
		{name: "malformed json", body: `{"name":`, wantInvalidJSON: true},
		{name: "empty body", body: ``, wantInvalidJSON: true},
		{name: "wrong type", body: `{"name":42,"link":"https://example.com"}`, wantInvalidJSON: true},
		{name: "invalid link", body: `{"name":"Архыз","link":"not a link"}`, wantValidation: true},
	}

	v := validators.NewStructValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(tt.body))

			got, err := bindJSON[models.CreateCardRequest](req, v)

			switch {
			case tt.wantInvalidJSON:
				assert.ErrorIs(t, err, ErrInvalidJSON)
			case tt.wantValidation:
				assert.ErrorIs(t, err, validators.ErrInvalidInput)
				assert.NotErrorIs(t, err, ErrInvalidJSON)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Архыз", got.Name)
				assert.Equal(t, "https://example.com/a.jpg", got.Link)
			}
		})
	}
}

func TestBindJSON_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", maxBodySize) + `","link":"https://example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(body))

	_, err := bindJSON[models.CreateCardRequest](req, validators.NewStructValidator())

	assert.ErrorIs(t, err, ErrInvalidJSON)
}
