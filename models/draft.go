// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DraftRecord is one code draft as exchanged with the remote draft service.
//
// Code carries whatever the client stored locally. The client sends the
// encrypted blob, so the server never sees plaintext source.
// UserID is never read from the body; the server takes it from the token.
type DraftRecord struct {
	UserID    string     `json:"-"`
	ExamID    string     `json:"exam_id" validate:"notblank,max=128"`
	ProblemID string     `json:"problem_id" validate:"notblank,max=128"`
	Language  string     `json:"language" validate:"notblank,max=64"`
	Code      string     `json:"code" validate:"notblank,max=1048576"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// LoadDraftRequest addresses a single draft on the remote draft service.
type LoadDraftRequest struct {
	UserID    string `json:"-"`
	ExamID    string `json:"exam_id" validate:"notblank,max=128"`
	ProblemID string `json:"problem_id" validate:"notblank,max=128"`
	Language  string `json:"language" validate:"notblank,max=64"`
}

// LoadDraftResponse is the body of a draft load. Code is empty when nothing
// was saved for the requested slot.
type LoadDraftResponse struct {
	Code string `json:"code"`
}

// SaveDraftResponse acknowledges a draft save.
type SaveDraftResponse struct {
	Status string `json:"status"`
}

// LoadRequest builds the remote lookup for a code key.
func (k ArtifactKey) LoadRequest() LoadDraftRequest {
	return LoadDraftRequest{
		ExamID:    k.ExamID,
		ProblemID: k.ProblemID,
		Language:  k.Language,
	}
}

// Record builds the remote save payload for a code key.
func (k ArtifactKey) Record(code string) DraftRecord {
	return DraftRecord{
		ExamID:    k.ExamID,
		ProblemID: k.ProblemID,
		Language:  k.Language,
		Code:      code,
	}
}
