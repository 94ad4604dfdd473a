package entities

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrTerminalState     = errors.New("order is in a terminal state")
	ErrMissingReason     = errors.New("reason is required")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("order was modified concurrently")
	ErrInvalidOrder      = errors.New("invalid order data")
)
