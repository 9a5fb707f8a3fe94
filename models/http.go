package models

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=2,max=30"`
	About    string `json:"about,omitempty" validate:"omitempty,min=2,max=200"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url_pattern"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User converts the request into a not yet persisted [User].
func (r SignupRequest) User() User {
	return User{
		Name:     r.Name,
		About:    r.About,
		Avatar:   r.Avatar,
		Email:    r.Email,
		Password: r.Password,
	}
}

// SigninRequest is the body of POST /signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body of PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=60"`
}

// UpdateAvatarRequest is the body of PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url_pattern"`
}

// CreateCardRequest is the body of POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url_pattern"`
}

// Card converts the request into a card owned by ownerID.
func (r CreateCardRequest) Card(ownerID string) Card {
	return Card{
		Name:  r.Name,
		Link:  r.Link,
		Owner: ownerID,
		Likes: []string{},
	}
}
