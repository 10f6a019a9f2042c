package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
)

// ClientStorages is the exam client storage layer: one SQLite file holding
// the encrypted draft cache and the session cursor.
type ClientStorages struct {
	DraftRepository LocalDraftRepository

	db *DB
}

// NewClientStorages opens (or creates) the SQLite file at cfg.DB.DSN and
// applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DraftRepository: NewLocalDraftRepository(db, logger),
		db:              db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
