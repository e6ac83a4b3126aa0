package command

import "errors"

// ErrInvalidInput marks a request that failed domain validation (bad type,
// non-positive amount, and so on). Handlers translate it to HTTP 400.
var ErrInvalidInput = errors.New("invalid input")
