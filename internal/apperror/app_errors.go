package apperror

import "errors"

var (
	ErrTransport         = errors.New("game server unreachable")
	ErrUnexpectedStatus  = errors.New("unexpected game server status")
	ErrMalformedResponse = errors.New("malformed game server response")
	ErrInvalidCoordinate = errors.New("invalid cell coordinate")
)
