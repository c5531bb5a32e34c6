package rasterfx

import (
	"errors"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// Errors reported by filters and the driver boundary.
// Callers test them with errors.Is; filters wrap them with context.
var (
	// ErrInvalidInput is returned when a filter is invoked with a bad
	// argument set: no images, too many images, a mask whose dimensions
	// differ from the source, or a missing mask where one is required.
	// It is also returned for invalid filter configuration.
	ErrInvalidInput = errors.New("rasterfx: invalid input")

	// ErrOutOfRange is returned when a lookup falls outside a configured
	// table, which indicates a configuration bug.
	ErrOutOfRange = errors.New("rasterfx: index out of range")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrUnsupportedFormat is returned when a container format is not supported.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = intImage.ErrEmptyData
)
