// Package usecase implements the business logic for the wins feature.
package usecase

import "errors"

var (
	// ErrWinNotFound is returned when no win exists with the given ID.
	ErrWinNotFound = errors.New("win not found")

	// ErrNotOwner is returned when the caller's identity does not match the win's owner.
	// Ownership mismatches are always reported, never silently ignored.
	ErrNotOwner = errors.New("caller is not the owner of this win")

	// ErrTitleTooShort is returned when a win title is missing or under 3 characters.
	ErrTitleTooShort = errors.New("title must be at least 3 characters")

	// ErrImageTooLarge is returned when an uploaded image exceeds the size limit.
	ErrImageTooLarge = errors.New("image exceeds maximum size")

	// ErrImageRejected is returned when an uploaded image fails the content moderation check.
	ErrImageRejected = errors.New("image rejected by content moderation")

	// ErrImageUploadFailed is returned when the asset-hosting service cannot store the image.
	ErrImageUploadFailed = errors.New("failed to upload image")
)
