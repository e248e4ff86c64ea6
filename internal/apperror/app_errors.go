package apperror

import "errors"

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionIDRequired = errors.New("session id is required")
	ErrNoActiveSession   = errors.New("no active session")
)
