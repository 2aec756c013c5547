package entity

import "errors"

var (
	// Pipeline errors, one per stage. All of them are terminal for the
	// current invocation: nothing is retried or recovered locally.
	ErrFetch     = errors.New("fetch failed")
	ErrDecode    = errors.New("image decode failed")
	ErrEncode    = errors.New("png encode failed")
	ErrTransport = errors.New("transport encoding failed")

	// General errors
	ErrInvalidEvent = errors.New("invalid click event")
)
