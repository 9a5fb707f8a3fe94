package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/models"
)

const (
	testUserID  = "5f8d0d55b54764421b7156c9"
	testOwnerID = "5f8d0d55b54764421b7156ca"
	testCardID  = "5f8d0d55b54764421b7156cb"
)

var errStorage = errors.New("storage error")

func testAppConfig() config.App {
	return config.App{
		Env:              config.EnvDevelopment,
		TokenIssuer:      "mesto-api",
		TokenDuration:    7 * 24 * time.Hour,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "1.0.0",
	}
}

func testCard() models.Card {
	return models.Card{
		ID:    testCardID,
		Name:  "Архыз",
		Link:  "https://example.com/arkhyz.jpg",
		Owner: testOwnerID,
		Likes: []string{},
	}
}
