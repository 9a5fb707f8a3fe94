package models

import "time"

// Profile defaults applied at registration when the client omits the field.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User represents a registered account.
//
// The JSON form of User is its public shape: the password hash and the
// creation timestamp are never serialized to API clients.
type User struct {
	// ID is the 24-character hexadecimal identity assigned by the store.
	ID string `json:"_id" validate:"omitempty,objectid"`

	// Name is the display name shown on the profile.
	Name string `json:"name" validate:"min=2,max=30"`

	// About is a short free-form description of the user.
	About string `json:"about" validate:"min=2,max=200"`

	// Avatar is a link to the profile picture.
	Avatar string `json:"avatar" validate:"url_pattern"`

	// Email is the unique login of the user.
	Email string `json:"email" validate:"required,email"`

	// Password holds the bcrypt hash once the user has been persisted.
	// Before registration it carries the plaintext received from the client.
	Password string `json:"-"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"-"`
}

// WithDefaults returns a copy of u where empty profile fields are replaced
// with the registration defaults.
func (u User) WithDefaults() User {
	if u.Name == "" {
		u.Name = DefaultUserName
	}
	if u.About == "" {
		u.About = DefaultUserAbout
	}
	if u.Avatar == "" {
		u.Avatar = DefaultUserAvatar
	}

	return u
}

// UserUpdate describes a partial update of a user profile.
// Only non-nil fields are written.
type UserUpdate struct {
	// ID identifies the user being updated. Required.
	ID string

	Name   *string
	About  *string
	Avatar *string
}

// IsEmpty reports whether the update carries no fields to write.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.About == nil && u.Avatar == nil
}

// Apply writes the non-nil fields of the update onto user.
func (u UserUpdate) Apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.About != nil {
		user.About = *u.About
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}

	return user
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
