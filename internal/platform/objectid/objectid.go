// Package objectid validates and mints the 24-character lowercase hex identifiers
// used for stories, interaction events and choice counters.
package objectid

import "go.mongodb.org/mongo-driver/bson/primitive"

const Length = 24

// IsValid reports whether s is exactly 24 lowercase hexadecimal characters.
// primitive.ObjectIDFromHex is not used here because it also accepts uppercase.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// New returns a fresh identifier in canonical form.
func New() string {
	return primitive.NewObjectID().Hex()
}
