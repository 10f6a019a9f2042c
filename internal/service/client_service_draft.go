// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-exam-drafts/internal/adapter"
	"github.com/MKhiriev/go-exam-drafts/internal/crypto"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/models"
)

type clientDraftService struct {
	local     store.LocalDraftRepository
	remote    adapter.DraftServerAdapter
	cipher    crypto.DraftCipher
	templates TemplateProvider

	logger *logger.Logger
}

func NewClientDraftService(
	local store.LocalDraftRepository,
	remote adapter.DraftServerAdapter,
	cipher crypto.DraftCipher,
	templates TemplateProvider,
	logger *logger.Logger,
) ClientDraftService {
	return &clientDraftService{
		local:     local,
		remote:    remote,
		cipher:    cipher,
		templates: templates,
		logger:    logger,
	}
}

func (s *clientDraftService) Load(ctx context.Context, key models.ArtifactKey) (string, error) {
	storageKey, err := key.Token()
	if err != nil {
		return "", err
	}

	if text, ok := s.loadLocal(ctx, key, storageKey); ok {
		return text, nil
	}

	// only code drafts are kept on the server
	if key.Kind != models.KindCode {
		return "", nil
	}

	if text, ok := s.loadRemote(ctx, key); ok {
		return text, nil
	}

	return s.templates.Default(key.Language), nil
}

func (s *clientDraftService) loadLocal(ctx context.Context, key models.ArtifactKey, storageKey string) (string, bool) {
	encrypted, err := s.local.ReadDraft(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, store.ErrDraftNotFound) {
			s.logger.Warn().Err(err).
				Str("func", "clientDraftService.Load").
				Stringer("key", key).
				Msg("local draft read failed")
		}
		return "", false
	}

	text, err := s.cipher.Decrypt(encrypted, key.UserID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientDraftService.Load").
			Stringer("key", key).
			Msg("local draft can not be decrypted, ignoring it")
		return "", false
	}

	return text, true
}

func (s *clientDraftService) loadRemote(ctx context.Context, key models.ArtifactKey) (string, bool) {
	encrypted, err := s.remote.LoadDraft(ctx, key.LoadRequest())
	if err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			s.logger.Warn().Err(err).
				Str("func", "clientDraftService.Load").
				Stringer("key", key).
				Msg("remote draft load failed")
		}
		return "", false
	}

	text, err := s.cipher.Decrypt(encrypted, key.UserID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientDraftService.Load").
			Stringer("key", key).
			Msg("remote draft can not be decrypted, ignoring it")
		return "", false
	}

	return text, true
}

func (s *clientDraftService) Save(ctx context.Context, key models.ArtifactKey, plaintext string) error {
	storageKey, err := key.Token()
	if err != nil {
		return err
	}

	encrypted, err := s.cipher.Encrypt(plaintext, key.UserID)
	if err != nil {
		return fmt.Errorf("encrypt draft: %w", err)
	}

	if err = s.local.WriteDraft(ctx, storageKey, encrypted); err != nil {
		return fmt.Errorf("write local draft: %w", err)
	}

	return nil
}

func (s *clientDraftService) Push(ctx context.Context, key models.ArtifactKey) error {
	if key.Kind != models.KindCode {
		return fmt.Errorf("%w: only code drafts are pushed, got %s", models.ErrInvalidKey, key.Kind)
	}

	storageKey, err := key.Token()
	if err != nil {
		return err
	}

	encrypted, err := s.local.ReadDraft(ctx, storageKey)
	if err != nil {
		return fmt.Errorf("read local draft: %w", err)
	}

	// the server stores the ciphertext as is
	return s.remote.SaveDraft(ctx, key.Record(encrypted))
}

func (s *clientDraftService) SaveCursor(ctx context.Context, userID, examID string, problemIndex int) error {
	cursorKey, err := models.CursorKey(userID, examID)
	if err != nil {
		return err
	}

	return s.local.WriteDraft(ctx, cursorKey, strconv.Itoa(problemIndex))
}

func (s *clientDraftService) LoadCursor(ctx context.Context, userID, examID string) int {
	cursorKey, err := models.CursorKey(userID, examID)
	if err != nil {
		return 0
	}

	value, err := s.local.ReadDraft(ctx, cursorKey)
	if err != nil {
		return 0
	}

	index, err := strconv.Atoi(value)
	if err != nil || index < 0 {
		return 0
	}

	return index
}
