package shop

import "github.com/pkg/errors"

// Service-level sentinels. Handlers map these onto the JSON failure
// envelope; anything else is treated as a storage failure.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidInput      = errors.New("invalid input")
	ErrBadCredentials    = errors.New("bad credentials")
	ErrDuplicate         = errors.New("duplicate record")
)
