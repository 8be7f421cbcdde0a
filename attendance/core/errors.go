package core

import "errors"

// Error kinds surfaced by clock actions and administrative edits. Handlers
// match these with errors.Is and translate them to HTTP statuses; nothing in
// this package retries or swallows them.
var (
	ErrAlreadyOnDuty    = errors.New("employee is already on duty")
	ErrNotOnDuty        = errors.New("employee is not on duty")
	ErrInactiveEmployee = errors.New("employee account is deactivated")
	ErrInvalidEdit      = errors.New("edit would produce an invalid entry")
	ErrNotFound         = errors.New("record not found")
	ErrAuthFailure      = errors.New("invalid credentials")
	ErrSessionExpired   = errors.New("session expired")
)
