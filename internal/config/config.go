// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// exam client and the draft server. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`

	// Adapter is the client's connection to the draft server.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// Exam describes the session the client opens.
	Exam Exam `envPrefix:"EXAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds security and versioning settings.
type App struct {
	// TokenSignKey verifies JWT bearer tokens on the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// HashKey is the HMAC key of the HashSHA256 request header. Both sides
	// must use the same value; empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

type Storage struct {
	DB DBConfig `envPrefix:"DB_"`
}

// DBConfig holds a database connection string. The server expects a
// PostgreSQL URL, the client a SQLite file path.
type DBConfig struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the draft server.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the draft server.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the draft server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token issued by the exam platform.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

type Workers struct {
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`
}

type Exam struct {
	// UserID defaults to the subject of Adapter.Token when empty.
	// Env: EXAM_USER_ID
	UserID string `env:"USER_ID"`

	// Env: EXAM_ID
	ExamID string `env:"ID"`

	// Problems is a comma-separated list of problem ids.
	// Env: EXAM_PROBLEMS
	Problems []string `env:"PROBLEMS" envSeparator:","`

	// Languages is a comma-separated list of "name" or "id=name" entries.
	// Env: EXAM_LANGUAGES
	Languages []string `env:"LANGUAGES" envSeparator:","`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. A field set by an earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
