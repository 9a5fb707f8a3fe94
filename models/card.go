package models

import "time"

// Card is a picture posted by a user. Its JSON form is the public shape
// returned by every cards endpoint.
type Card struct {
	ID    string `json:"_id" validate:"omitempty,objectid"`
	Name  string `json:"name" validate:"required,min=2,max=30"`
	Link  string `json:"link" validate:"required,url_pattern"`
	Owner string `json:"owner" validate:"required,objectid"`

	// Likes is the set of user identities that liked the card.
	// It is always serialized as an array, never as null.
	Likes []string `json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsOwnedBy reports whether userID created the card.
func (c Card) IsOwnedBy(userID string) bool {
	return c.Owner == userID
}

// LikedBy reports whether userID is present in the likes set.
func (c Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}

	return false
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}
