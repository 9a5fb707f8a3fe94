package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/MKhiriev/mesto-api/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] bound to adapterCfg.HTTPAddress. A token from the config is
// stored right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	adapter.SetToken(adapterCfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
	h.client.WithToken(h.token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Signup POSTs req to /signup and returns the created user.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Signin POSTs the credentials to /signin and stores the returned token.
func (h *httpServerAdapter) Signin(ctx context.Context, email, password string) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.SigninRequest{Email: email, Password: password}).
		SetResult(&tokenResp).
		Post("/signin")
	if err != nil {
		return "", fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(tokenResp.Token)
	h.logger.Debug().Msg("signed in")
	return tokenResp.Token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodGet, "/users/me", nil, &user)
	return user, err
}

func (h *httpServerAdapter) User(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodGet, "/users/"+url.PathEscape(userID), nil, &user)
	return user, err
}

func (h *httpServerAdapter) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := h.do(ctx, resty.MethodGet, "/users", nil, &users)
	return users, err
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, name, about string) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodPatch, "/users/me", models.UpdateProfileRequest{Name: name, About: about}, &user)
	return user, err
}

func (h *httpServerAdapter) UpdateAvatar(ctx context.Context, avatar string) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodPatch, "/users/me/avatar", models.UpdateAvatarRequest{Avatar: avatar}, &user)
	return user, err
}

func (h *httpServerAdapter) Cards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := h.do(ctx, resty.MethodGet, "/cards", nil, &cards)
	return cards, err
}

func (h *httpServerAdapter) AddCard(ctx context.Context, name, link string) (models.Card, error) {
	var card models.Card
	err := h.do(ctx, resty.MethodPost, "/cards", models.CreateCardRequest{Name: name, Link: link}, &card)
	return card, err
}

func (h *httpServerAdapter) DeleteCard(ctx context.Context, cardID string) (models.Card, error) {
	var card models.Card
	err := h.do(ctx, resty.MethodDelete, "/cards/"+url.PathEscape(cardID), nil, &card)
	return card, err
}

func (h *httpServerAdapter) Like(ctx context.Context, cardID string) (models.Card, error) {
	var card models.Card
	err := h.do(ctx, resty.MethodPut, "/cards/"+url.PathEscape(cardID)+"/likes", nil, &card)
	return card, err
}

func (h *httpServerAdapter) Dislike(ctx context.Context, cardID string) (models.Card, error) {
	var card models.Card
	err := h.do(ctx, resty.MethodDelete, "/cards/"+url.PathEscape(cardID)+"/likes", nil, &card)
	return card, err
}

// Version GETs /version; the body is plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// do sends an authenticated request and decodes a 2xx JSON body into result.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any) error {
	if h.token == "" {
		return ErrNotAuthenticated
	}

	req := h.client.R().
		SetContext(ctx).
		SetResult(result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}
