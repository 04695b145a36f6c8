package download

import "errors"

// ErrInvalidOutputDir is returned when the output directory does not exist or is not a directory.
var ErrInvalidOutputDir = errors.New("invalid output directory")
