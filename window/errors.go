package window

import "errors"

var (
	// ErrInvalidWindow indicates a window size outside [1, len(x)].
	ErrInvalidWindow = errors.New("window: size must be between 1 and the input length")
)
