package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidAdapterConfigs indicates a missing draft server address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key or version.
	ErrInvalidAppConfigs    = errors.New("invalid app configuration")
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	ErrInvalidExamConfigs   = errors.New("invalid exam configuration")
)
