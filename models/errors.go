package models

import "errors"

var (
	ErrInvalidKey = errors.New("invalid artifact key")
)
