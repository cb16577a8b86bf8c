package shared

import "shareit/internal/pkg/errs"

// Sentinel errors shared by the command and query sides. Handlers match
// these with errors.Is to pick the HTTP status; the wrapped cause keeps the
// offending identifier for logging.
var (
	ErrUserNotFound     = errs.New("user not found")
	ErrItemNotFound     = errs.New("item not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrRequestNotFound  = errs.New("request not found")
	ErrItemNotAvailable = errs.New("item not available")
	ErrNotOwner         = errs.New("user is not the item owner")
	ErrEmailTaken       = errs.New("email already in use")
	ErrUnknownState     = errs.New("unknown state")
	ErrInvalidPage      = errs.New("invalid page request")
	ErrValidation       = errs.New("validation failed")
	ErrItemNeverBooked  = errs.New("item never booked by user")
	ErrStorageFailure   = errs.New("storage operation failed")
)
