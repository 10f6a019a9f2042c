package adapter

import "errors"

var (
	// ErrRemoteUnavailable wraps every transport failure and every non-2xx
	// response other than 404.
	ErrRemoteUnavailable = errors.New("draft service unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("draft not found on server")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)
