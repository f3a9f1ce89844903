package state

import "errors"

var (
	// ErrInvalidDimensions is returned when a canvas is created or resized
	// with a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid canvas dimensions")

	// ErrOutOfBounds is returned when a pixel outside the canvas is sampled.
	ErrOutOfBounds = errors.New("point outside canvas")

	// ErrIO wraps every failure to write the canvas to disk.
	ErrIO = errors.New("canvas export failed")

	// ErrCancelled marks a dialog dismissed without confirmation.
	// It is a no-op for the caller, never something to show the user.
	ErrCancelled = errors.New("cancelled by user")
)
