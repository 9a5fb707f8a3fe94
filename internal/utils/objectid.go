package utils

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDGenerator produces 24-character hexadecimal identities.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a fresh ObjectID in its hexadecimal form.
func (g *IDGenerator) Generate() string {
	return primitive.NewObjectID().Hex()
}

// IsObjectID reports whether s is a well-formed 24-character hexadecimal
// identity.
func IsObjectID(s string) bool {
	return primitive.IsValidObjectID(s)
}
