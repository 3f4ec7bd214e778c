package render

import "errors"

var (
	// ErrInvalidDimensions is returned when a framebuffer is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid framebuffer dimensions")

	// ErrAttributeLengthMismatch is returned when supplied vertex attribute
	// arrays differ in length.
	ErrAttributeLengthMismatch = errors.New("vertex attribute length mismatch")

	// ErrIncompleteTriangle is returned when the position count is not a
	// multiple of three.
	ErrIncompleteTriangle = errors.New("vertex count is not a multiple of 3")

	// ErrMissingTexture is returned when shading is requested with no texture
	// bound.
	ErrMissingTexture = errors.New("no texture bound")

	// ErrUnknownTexture is returned for a handle that is not in the arena.
	ErrUnknownTexture = errors.New("unknown texture handle")

	// ErrInvalidGamma is returned when the gamma uniform is not a positive
	// finite number.
	ErrInvalidGamma = errors.New("gamma must be positive")
)
