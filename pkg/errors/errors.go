// Package errors defines the sentinel errors repositories surface to
// handlers, which map them onto HTTP status codes.
package errors

import "errors"

var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)
