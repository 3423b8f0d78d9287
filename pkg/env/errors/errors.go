package errors

import "errors"

var ErrInvalidValue = errors.New("invalid environment variable value")
