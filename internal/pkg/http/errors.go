package http

import "errors"

// ErrNotFound is returned when the remote service answers 404
var ErrNotFound = errors.New("resource not found")

// ErrConflict is returned when the remote service answers 409, typically a
// rejected lifecycle transition
var ErrConflict = errors.New("resource conflict")
