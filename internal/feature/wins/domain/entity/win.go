// Package entity defines the domain entities for the wins feature.
package entity

import "time"

// Win represents a user-submitted achievement displayed on the public wall.
// Each win is owned by exactly one user; only the owner may update or delete it.
type Win struct {
	// ID is the unique identifier for the win.
	ID uint `gorm:"primaryKey"`

	// OwnerID references the user who created the win.
	OwnerID uint `gorm:"index;not null"`

	// OwnerName is the owner's display name, populated by a join when listing.
	// It is never written to the wins table.
	OwnerName string `gorm:"->;-:migration"`

	// Title is the headline of the achievement. Minimum 3 characters.
	Title string `gorm:"size:255;not null"`

	// Description is optional free-form detail. Defaults to empty.
	Description string

	// Category groups wins on the wall. Defaults to "general".
	Category string `gorm:"size:100"`

	// ProofURL is an optional public URL of the uploaded proof image.
	ProofURL string `gorm:"size:2048"`

	// CreatedAt is the timestamp when the win was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the win was last updated.
	UpdatedAt time.Time
}
