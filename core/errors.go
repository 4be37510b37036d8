package core

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP statuses; everything else surfaces as a 400.
var (
	ErrNotFound       = errors.New("record not found")
	ErrNotPermitted   = errors.New("operation not permitted")
	ErrBadCredentials = errors.New("invalid credentials")

	ErrPasswordPolicy   = errors.New("password must be at least 4 characters and both entries must match")
	ErrPasswordMismatch = errors.New("current password is incorrect")

	ErrProofRequired = errors.New("task requires proof before submission")

	ErrAlreadyClockedIn = errors.New("already clocked in today")
	ErrNoOpenEntry      = errors.New("no open attendance entry to close")
)
