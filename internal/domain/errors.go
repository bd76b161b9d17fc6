package domain

import "errors"

var (
	// ErrInvalidIdentifier marks a malformed story/event identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrNotFound marks a well-formed identifier with no matching record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks a structurally invalid request document.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable marks a failed call to the backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
