// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/models"
)

const saveDraftAttempts = 3

var saveDraftBackoff = []time.Duration{0, 100 * time.Millisecond, 300 * time.Millisecond}

type draftRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		db:     db,
		logger: logger,
	}
}

// SaveDraft upserts the draft. Transient postgres failures (connection loss,
// serialization failure, deadlock) are retried a few times.
func (r *draftRepository) SaveDraft(ctx context.Context, draft models.DraftRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveDraftQuery(draft, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "draftRepository.SaveDraft").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 0; attempt < saveDraftAttempts; attempt++ {
		if wait := saveDraftBackoff[attempt]; wait > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
			case <-time.After(wait):
			}
		}

		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		log.Err(err).
			Str("func", "draftRepository.SaveDraft").
			Str("user_id", draft.UserID).
			Str("exam_id", draft.ExamID).
			Str("problem_id", draft.ProblemID).
			Str("pg_code", postgresError(err)).
			Int("attempt", attempt+1).
			Msg("failed to upsert draft")

		if !r.db.retryable(err) {
			break
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (r *draftRepository) GetDraft(ctx context.Context, req models.LoadDraftRequest) (models.DraftRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDraftQuery(req)
	if err != nil {
		log.Err(err).Str("func", "draftRepository.GetDraft").Msg("failed to build select query")
		return models.DraftRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		draft     models.DraftRecord
		updatedAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&draft.UserID,
		&draft.ExamID,
		&draft.ProblemID,
		&draft.Language,
		&draft.Code,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DraftRecord{}, ErrDraftNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.GetDraft").
			Str("user_id", req.UserID).
			Str("exam_id", req.ExamID).
			Str("problem_id", req.ProblemID).
			Msg("failed to read draft")
		return models.DraftRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	draft.UpdatedAt = &updatedAt
	return draft, nil
}
