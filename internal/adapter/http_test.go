// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/models"
)

const (
	testToken  = "header.payload.signature"
	testUserID = "5f8d0d55b54764421b7156c9"
	testCardID = "5f8d0d55b54764421b7156cb"
)

func newTestAdapter(t *testing.T, serverURL, token string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func testCard() models.Card {
	return models.Card{ID: testCardID, Name: "Архыз", Link: "https://example.com/a.jpg", Owner: testUserID, Likes: []string{}}
}

// ── construction ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:3000/", want: "http://localhost:3000"},
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: "  https://mesto.example.com  ", want: "https://mesto.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Error(t, err)
}

func TestNewHTTPServerAdapter_StoresToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:3000", "  "+testToken+" ")

	assert.Equal(t, testToken, a.Token())
}

// ── auth ──────────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jacques@example.com", req.Email)
		assert.Equal(t, "secret", req.Password)

		writeJSON(t, w, http.StatusCreated, models.User{ID: testUserID, Email: req.Email, Name: models.DefaultUserName})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	user, err := a.Signup(context.Background(), models.SignupRequest{Email: "jacques@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
	assert.Equal(t, models.DefaultUserName, user.Name)
}

func TestSignup_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Message: "Пользователь с таким email уже зарегистрирован"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Signup(context.Background(), models.SignupRequest{Email: "a@b.c", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Пользователь с таким email уже зарегистрирован", MessageFromError(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestSignin_StoresToken(t *testing.T) {
	var authAfterSignin string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/signin":
			writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: testToken})
		case "/users/me":
			authAfterSignin = r.Header.Get("Authorization")
			writeJSON(t, w, http.StatusOK, models.User{ID: testUserID})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Signin(context.Background(), "jacques@example.com", "secret")
	require.NoError(t, err)

	_, err = a.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testToken, token)
	assert.Equal(t, testToken, a.Token())
	assert.Equal(t, "Bearer "+testToken, authAfterSignin)
}

func TestSignin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Message: "Неправильные почта или пароль"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Signin(context.Background(), "jacques@example.com", "wrong")

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Неправильные почта или пароль", MessageFromError(err))
	assert.Empty(t, a.Token())
}

// ── authenticated requests ────────────────────────────────────────────────────

func TestAuthenticatedRequests_RequireToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1", "")

	_, err := a.Cards(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRequests(t *testing.T) {
	tests := []struct {
		name       string
		wantMethod string
		wantPath   string
		wantBody   string
		call       func(a *httpServerAdapter) (any, error)
		response   any
	}{
		{
			name: "me", wantMethod: http.MethodGet, wantPath: "/users/me",
			call:     func(a *httpServerAdapter) (any, error) { return a.Me(context.Background()) },
			response: models.User{ID: testUserID},
		},
		{
			name: "user", wantMethod: http.MethodGet, wantPath: "/users/" + testUserID,
			call:     func(a *httpServerAdapter) (any, error) { return a.User(context.Background(), testUserID) },
			response: models.User{ID: testUserID},
		},
		{
			name: "users", wantMethod: http.MethodGet, wantPath: "/users",
			call:     func(a *httpServerAdapter) (any, error) { return a.Users(context.Background()) },
			response: []models.User{{ID: testUserID}},
		},
		{
			name: "update profile", wantMethod: http.MethodPatch, wantPath: "/users/me",
			wantBody: `{"name":"Марк","about":"Моряк"}`,
			call: func(a *httpServerAdapter) (any, error) {
				return a.UpdateProfile(context.Background(), "Марк", "Моряк")
			},
			response: models.User{ID: testUserID, Name: "Марк", About: "Моряк"},
		},
		{
			name: "update avatar", wantMethod: http.MethodPatch, wantPath: "/users/me/avatar",
			wantBody: `{"avatar":"https://example.com/b.png"}`,
			call: func(a *httpServerAdapter) (any, error) {
				return a.UpdateAvatar(context.Background(), "https://example.com/b.png")
			},
			response: models.User{ID: testUserID, Avatar: "https://example.com/b.png"},
		},
		{
			name: "cards", wantMethod: http.MethodGet, wantPath: "/cards",
			call:     func(a *httpServerAdapter) (any, error) { return a.Cards(context.Background()) },
			response: []models.Card{testCard()},
		},
		{
			name: "add card", wantMethod: http.MethodPost, wantPath: "/cards",
			wantBody: `{"name":"Архыз","link":"https://example.com/a.jpg"}`,
			call: func(a *httpServerAdapter) (any, error) {
				return a.AddCard(context.Background(), "Архыз", "https://example.com/a.jpg")
			},
			response: testCard(),
		},
		{
			name: "delete card", wantMethod: http.MethodDelete, wantPath: "/cards/" + testCardID,
			call:     func(a *httpServerAdapter) (any, error) { return a.DeleteCard(context.Background(), testCardID) },
			response: testCard(),
		},
		{
			name: "like", wantMethod: http.MethodPut, wantPath: "/cards/" + testCardID + "/likes",
			call:     func(a *httpServerAdapter) (any, error) { return a.Like(context.Background(), testCardID) },
			response: testCard(),
		},
		{
			name: "dislike", wantMethod: http.MethodDelete, wantPath: "/cards/" + testCardID + "/likes",
			call:     func(a *httpServerAdapter) (any, error) { return a.Dislike(context.Background(), testCardID) },
			response: testCard(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
				if tt.wantBody != "" {
					var body json.RawMessage
					require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
					assert.JSONEq(t, tt.wantBody, string(body))
				}
				writeJSON(t, w, http.StatusOK, tt.response)
			}))
			defer srv.Close()

			got, err := tt.call(newTestAdapter(t, srv.URL, testToken))

			require.NoError(t, err)
			assert.Equal(t, tt.response, got)
		})
	}
}

func TestDeleteCard_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Message: "Нет доступа"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, testToken).DeleteCard(context.Background(), testCardID)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "Нет доступа", MessageFromError(err))
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("1.0.0"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL, "").Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", version)
}
