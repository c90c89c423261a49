package provider

import "errors"

var (
	// ErrUnrecognizedRequest marks a request URI the routing table does
	// not know. It signals caller misuse, not a recoverable condition.
	ErrUnrecognizedRequest = errors.New("unrecognized request uri")
	// ErrIDMismatch marks an update whose URI id disagrees with the id
	// inside the payload. Also a caller bug, never swallowed.
	ErrIDMismatch = errors.New("uri id does not match entity id")
)
