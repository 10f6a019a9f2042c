// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/models"
)

type draftService struct {
	repository store.DraftRepository
	logger     *logger.Logger
}

func NewDraftService(repository store.DraftRepository, logger *logger.Logger) DraftService {
	return &draftService{
		repository: repository,
		logger:     logger,
	}
}

func (d *draftService) SaveDraft(ctx context.Context, draft models.DraftRecord) error {
	if draft.UserID == "" {
		return ErrValidationNoUserID
	}

	if err := d.repository.SaveDraft(ctx, draft); err != nil {
		return fmt.Errorf("error saving draft: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("user_id", draft.UserID).
		Str("exam_id", draft.ExamID).
		Str("problem_id", draft.ProblemID).
		Str("language", draft.Language).
		Int("code_len", len(draft.Code)).
		Msg("draft saved")

	return nil
}

func (d *draftService) LoadDraft(ctx context.Context, req models.LoadDraftRequest) (models.DraftRecord, error) {
	if req.UserID == "" {
		return models.DraftRecord{}, ErrValidationNoUserID
	}

	draft, err := d.repository.GetDraft(ctx, req)
	if errors.Is(err, store.ErrDraftNotFound) {
		return models.DraftRecord{}, err
	}
	if err != nil {
		return models.DraftRecord{}, fmt.Errorf("error loading draft: %w", err)
	}

	return draft, nil
}
