package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/store"
	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/MKhiriev/mesto-api/internal/validators"
	"github.com/MKhiriev/mesto-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the model constraints of a user before it is stored.
	validator validators.Validator

	// passwordHashCost is the bcrypt cost used at registration.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// It is resolved once from the configuration (see config.App.SigningKey).
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewStructValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.SigningKey(),
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a new user account.
//
// Empty profile fields are replaced with the defaults, the user is validated,
// the email is checked for availability and the password is hashed with
// bcrypt before persistence.
//
// The availability check is only a fast path: the unique constraint on the
// email column decides, and its violation is reported as
// ErrEmailAlreadyExists as well.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Register").Logger()

	if user.Password == "" {
		log.Error().Str("email", user.Email).Msg("empty password provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user = user.WithDefaults()
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		log.Error().Str("email", user.Email).Msg("email is already registered")
		return models.User{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	user.Password, err = utils.HashPassword(user.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", fromStoreError(err))
	}

	registeredUser.Password = ""
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password produce the same
// ErrInvalidCredentials so that callers cannot tell registered emails apart.
// The returned user never carries the password hash.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Login").Logger()

	if email == "" || password == "" {
		log.Error().Msg("empty credentials provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", email).Msg("sign-in with unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.Password, password); err != nil {
		log.Info().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser.Password = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
