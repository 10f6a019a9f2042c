// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the exam client's connection to the remote draft service.
//
// [DraftServerAdapter] hides the transport from the service layer. The HTTP
// implementation maps response statuses to the sentinel errors of errors.go,
// so callers match failures with [errors.Is] ([ErrRemoteUnavailable] for
// anything that should be retried later, [ErrNotFound] for an empty slot).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-exam-drafts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// DraftServerAdapter saves and loads drafts on the draft service on behalf
// of the user the bearer token belongs to.
type DraftServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	Token() string

	// SaveDraft stores draft.Code for (exam, problem, language). The server
	// keeps only the latest value per slot.
	SaveDraft(ctx context.Context, draft models.DraftRecord) error

	// LoadDraft returns the stored code for the slot, or ErrNotFound when
	// the server has nothing (404 or an empty code field).
	LoadDraft(ctx context.Context, req models.LoadDraftRequest) (string, error)
}
