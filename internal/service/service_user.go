package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/store"
	"github.com/MKhiriev/mesto-api/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService returns a UserService wrapped by the given wrappers, applied
// in order: the last wrapper is the outermost one.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger, wrappers ...UserServiceWrapper) UserService {
	var svc UserService = &userService{
		userRepository: userRepository,
		logger:         logger,
	}

	for _, w := range wrappers {
		svc = w.Wrap(svc)
	}

	return svc
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Str("id", userID).Msg("error getting user")
		return models.User{}, fmt.Errorf("error getting user: %w", fromStoreError(err))
	}

	return user, nil
}

// UpdateProfile replaces name and about of the user.
func (s *userService) UpdateProfile(ctx context.Context, userID, name, about string) (models.User, error) {
	return s.update(ctx, models.UserUpdate{ID: userID, Name: &name, About: &about})
}

// UpdateAvatar replaces only the avatar of the user.
func (s *userService) UpdateAvatar(ctx context.Context, userID, avatar string) (models.User, error) {
	return s.update(ctx, models.UserUpdate{ID: userID, Avatar: &avatar})
}

func (s *userService) update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	user, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.update").Str("id", update.ID).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", fromStoreError(err))
	}

	return user, nil
}
