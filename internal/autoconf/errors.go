package autoconf

import "errors"

// ErrVersionNotFound indicates the requested component has no version declaration.
var ErrVersionNotFound = errors.New("version declaration not found")
