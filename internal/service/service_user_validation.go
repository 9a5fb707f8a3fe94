package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/validators"
	"github.com/MKhiriev/mesto-api/models"
)

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// UserValidationService checks identities and the model constraints of the
// changed fields before an update reaches the wrapped service.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if err := validators.ValidateID(userID); err != nil {
		return models.User{}, err
	}

	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID, name, about string) (models.User, error) {
	if err := validators.ValidateID(userID); err != nil {
		return models.User{}, err
	}

	user := models.User{Name: name, About: about}
	if err := v.validator.Validate(ctx, user, validators.FieldName, validators.FieldAbout); err != nil {
		return models.User{}, fmt.Errorf("error during profile validation before update: %w", err)
	}

	return v.inner.UpdateProfile(ctx, userID, name, about)
}

func (v *UserValidationService) UpdateAvatar(ctx context.Context, userID, avatar string) (models.User, error) {
	if err := validators.ValidateID(userID); err != nil {
		return models.User{}, err
	}

	user := models.User{Avatar: avatar}
	if err := v.validator.Validate(ctx, user, validators.FieldAvatar); err != nil {
		return models.User{}, fmt.Errorf("error during avatar validation before update: %w", err)
	}

	return v.inner.UpdateAvatar(ctx, userID, avatar)
}
