package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
)

// Storages is the draft service storage layer.
type Storages struct {
	DraftRepository DraftRepository

	db *DB
}

// NewStorages connects to PostgreSQL and applies pending migrations.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DraftRepository: NewDraftRepository(db, logger),
		db:              db,
	}, nil
}

func (s *Storages) Close() error {
	return s.db.Close()
}
