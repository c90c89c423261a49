package awards

import "errors"

var (
	ErrAwardNotFound       = errors.New("award not found")
	ErrAwardedMovieMissing = errors.New("awarded movie is not present")
)
