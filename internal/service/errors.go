package service

import "errors"

// Domain errors raised by the services and mapped to HTTP status codes
// at the handler boundary. Anything else coming out of a service is a
// persistence failure and surfaces as a generic 500.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyMember    = errors.New("user is already a member of this group")
	ErrDuplicateRequest = errors.New("a join request is already pending")
	ErrBlocked          = errors.New("user is blocked from this group")
	ErrCodeCollision    = errors.New("could not generate a unique group code")
	ErrDuplicateInvite  = errors.New("an invite is already pending for this user")
)
