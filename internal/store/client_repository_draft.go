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
)

type localDraftRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalDraftRepository(db *DB, logger *logger.Logger) LocalDraftRepository {
	return &localDraftRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localDraftRepository) WriteDraft(ctx context.Context, storageKey, value string) error {
	_, err := l.DB.ExecContext(ctx, upsertLocalDraft, storageKey, value, time.Now().UTC())
	if err != nil {
		l.logger.Err(err).
			Str("func", "localDraftRepository.WriteDraft").
			Str("storage_key", storageKey).
			Msg("failed to upsert local draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localDraftRepository) ReadDraft(ctx context.Context, storageKey string) (string, error) {
	var value string

	err := l.DB.QueryRowContext(ctx, getLocalDraft, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrDraftNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localDraftRepository.ReadDraft").
			Str("storage_key", storageKey).
			Msg("failed to read local draft")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}
