package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mesto-api/internal/adapter"
	"github.com/MKhiriev/mesto-api/internal/mock"
	"github.com/MKhiriev/mesto-api/models"
)

const (
	testUserID = "5f8d0d55b54764421b7156c9"
	testCardID = "5f8d0d55b54764421b7156cb"
)

func newTestCLI(t *testing.T) (*cli, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	a := mock.NewMockServerAdapter(gomock.NewController(t))
	var out bytes.Buffer
	return newCLI(a, &out, models.NewAppBuildInfo("1.0.0", "", "")), a, &out
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}} {
		c, _, out := newTestCLI(t)

		require.NoError(t, c.run(context.Background(), args))

		assert.Contains(t, out.String(), "Build version: 1.0.0")
		assert.Contains(t, out.String(), "add-card -name N -link URL")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	c, _, _ := newTestCLI(t)

	err := c.run(context.Background(), []string{"share"})

	assert.ErrorIs(t, err, errUnknownCommand)
}

func TestRun_Signup(t *testing.T) {
	c, a, out := newTestCLI(t)
	a.EXPECT().
		Signup(gomock.Any(), models.SignupRequest{Email: "j@example.com", Password: "secret", Name: "Жак"}).
		Return(models.User{ID: testUserID, Name: "Жак", Email: "j@example.com"}, nil)

	err := c.run(context.Background(), []string{"signup", "-email", "j@example.com", "-password", "secret", "-name", "Жак"})

	require.NoError(t, err)
	var user models.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &user))
	assert.Equal(t, testUserID, user.ID)
}

func TestRun_Signin(t *testing.T) {
	c, a, out := newTestCLI(t)
	a.EXPECT().Signin(gomock.Any(), "j@example.com", "secret").Return("token-value", nil)

	err := c.run(context.Background(), []string{"signin", "-email", "j@example.com", "-password", "secret"})

	require.NoError(t, err)
	assert.Equal(t, "token-value\n", out.String())
}

func TestRun_SigninBadFlag(t *testing.T) {
	c, _, _ := newTestCLI(t)

	err := c.run(context.Background(), []string{"signin", "-login", "x"})

	assert.Error(t, err)
}

func TestRun_CardCommands(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect func(a *mock.MockServerAdapter)
	}{
		{
			name: "cards",
			args: []string{"cards"},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().Cards(gomock.Any()).Return([]models.Card{{ID: testCardID}}, nil)
			},
		},
		{
			name: "add card",
			args: []string{"add-card", "-name", "Архыз", "-link", "https://example.com/a.jpg"},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().AddCard(gomock.Any(), "Архыз", "https://example.com/a.jpg").Return(models.Card{ID: testCardID}, nil)
			},
		},
		{
			name: "delete card",
			args: []string{"delete-card", testCardID},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().DeleteCard(gomock.Any(), testCardID).Return(models.Card{ID: testCardID}, nil)
			},
		},
		{
			name: "like",
			args: []string{"like", testCardID},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().Like(gomock.Any(), testCardID).Return(models.Card{ID: testCardID, Likes: []string{testUserID}}, nil)
			},
		},
		{
			name: "dislike",
			args: []string{"dislike", testCardID},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().Dislike(gomock.Any(), testCardID).Return(models.Card{ID: testCardID}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a, out := newTestCLI(t)
			tt.expect(a)

			require.NoError(t, c.run(context.Background(), tt.args))
			assert.Contains(t, out.String(), testCardID)
		})
	}
}

func TestRun_UserCommands(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect func(a *mock.MockServerAdapter)
	}{
		{
			name: "me",
			args: []string{"me"},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().Me(gomock.Any()).Return(models.User{ID: testUserID}, nil)
			},
		},
		{
			name: "users",
			args: []string{"users"},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().Users(gomock.Any()).Return([]models.User{{ID: testUserID}}, nil)
			},
		},
		{
			name: "user",
			args: []string{"user", testUserID},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().User(gomock.Any(), testUserID).Return(models.User{ID: testUserID}, nil)
			},
		},
		{
			name: "update profile",
			args: []string{"update-profile", "-name", "Марк", "-about", "Моряк"},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().UpdateProfile(gomock.Any(), "Марк", "Моряк").Return(models.User{ID: testUserID}, nil)
			},
		},
		{
			name: "update avatar",
			args: []string{"update-avatar", "-avatar", "https://example.com/b.png"},
			expect: func(a *mock.MockServerAdapter) {
				a.EXPECT().UpdateAvatar(gomock.Any(), "https://example.com/b.png").Return(models.User{ID: testUserID}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a, out := newTestCLI(t)
			tt.expect(a)

			require.NoError(t, c.run(context.Background(), tt.args))
			assert.Contains(t, out.String(), testUserID)
		})
	}
}

func TestRun_MissingCardID(t *testing.T) {
	c, _, _ := newTestCLI(t)

	err := c.run(context.Background(), []string{"like"})

	assert.ErrorIs(t, err, errMissingArgument)
}

func TestRun_AdapterError(t *testing.T) {
	c, a, out := newTestCLI(t)
	apiErr := &adapter.APIError{StatusCode: 403, Message: "Нет доступа"}
	a.EXPECT().DeleteCard(gomock.Any(), testCardID).Return(models.Card{}, apiErr)

	err := c.run(context.Background(), []string{"delete-card", testCardID})

	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, "Нет доступа", adapter.MessageFromError(err))
	assert.Empty(t, out.String())
}

func TestRun_Version(t *testing.T) {
	c, a, out := newTestCLI(t)
	a.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	require.NoError(t, c.run(context.Background(), []string{"version"}))
	assert.Equal(t, "1.2.3\n", out.String())
}
