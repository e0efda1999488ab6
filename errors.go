package smolscale

import "errors"

// Sentinel errors returned by context construction and Batch. Wrapped with
// fmt.Errorf("smolscale: ...: %w", ...) at the point of failure so callers
// can errors.Is against these while still getting a descriptive message.
var (
	ErrInvalidPixelType  = errors.New("invalid pixel type")
	ErrInvalidDimensions = errors.New("width and height must be at least 1")
	ErrRowstrideTooSmall = errors.New("rowstride is smaller than width * bytes-per-pixel")
	ErrBufferTooSmall    = errors.New("pixel buffer is smaller than rowstride * height")
	ErrRowRangeInvalid   = errors.New("row range is out of bounds or out of order")
	ErrBufferOverlap     = errors.New("input and output buffers overlap")
)
