package domain

import "errors"

var (
	MessageUnauthorized      = "unauthorized"
	MessageForbidden         = "forbidden access"
	MessageServerRunning     = "server is running"
	MessageFailedBodyRequest = "failed to parse request body"
	MessageFailedInvalidID   = "invalid document id"
	MessageFailedStoreQuery  = "store operation failed"

	ErrTokenNotFound   = errors.New("token not found")
	ErrTokenInvalid    = errors.New("token is invalid")
	ErrTokenExpired    = errors.New("token is expired")
	ErrInvalidObjectID = errors.New("malformed document id")
)
