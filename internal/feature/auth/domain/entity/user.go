// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered member of the wall of fame.
// It contains authentication credentials and public profile data.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name shown next to the user's wins.
	Name string `gorm:"size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords and is never serialized.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
