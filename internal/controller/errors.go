package controller

import "github.com/pkg/errors"

// Domain error kinds. Handlers map each sentinel to one stable HTTP status;
// anything else is surfaced as a generic server error.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrSwapRequestNotFound = errors.New("swap request not found")

	ErrSelfSwapRequest = errors.New("you cannot send a swap request to yourself")
	ErrMissingSkills   = errors.New("offered and wanted skills are required")

	ErrNotAccepter       = errors.New("only the accepter can act on this request")
	ErrNotRequester      = errors.New("only the requester can delete this request")
	ErrNotProfileOwner   = errors.New("you can only update your own profile")
	ErrRequestNotPending = errors.New("this request has already been processed")

	ErrDuplicatePendingRequest = errors.New("you already have a pending request with this user")
	ErrEmailTaken              = errors.New("email is already registered")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
