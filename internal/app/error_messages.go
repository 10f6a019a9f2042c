// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response texts shared by the draft server's
// handlers and middleware.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgNoUserIDProvided is returned when the request context has no user
	// id, i.e. the auth middleware did not run.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgInternalServerError replaces the details of 5xx failures.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned for a bearer token that fails
	// verification or carries no subject.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the body.
	MsgIntegrityCheckFailed = "request integrity check failed"

	// MsgDraftSaved is the status of a successful save.
	MsgDraftSaved = "saved"
)
