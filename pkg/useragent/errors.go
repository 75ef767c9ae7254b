package useragent

import "errors"

// ErrInvalidInput is returned when no User-Agent string is available at all.
// Unrecognised or malformed strings are never an error.
var ErrInvalidInput = errors.New("no user agent string available")
