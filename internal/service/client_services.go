package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-exam-drafts/internal/adapter"
	"github.com/MKhiriev/go-exam-drafts/internal/crypto"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/models"
)

type ClientServices struct {
	DraftService ClientDraftService
	AutosaveJob  ClientAutosaveJob

	autosaveInterval time.Duration
}

func NewClientServices(
	localStore *store.ClientStorages,
	serverAdapter adapter.DraftServerAdapter,
	cipher crypto.DraftCipher,
	templates TemplateProvider,
	autosaveInterval time.Duration,
	pushTimeout time.Duration,
	logger *logger.Logger,
) *ClientServices {
	drafts := NewClientDraftService(localStore.DraftRepository, serverAdapter, cipher, templates, logger)

	return &ClientServices{
		DraftService:     drafts,
		AutosaveJob:      NewClientAutosaveJob(drafts, pushTimeout, logger),
		autosaveInterval: autosaveInterval,
	}
}

// StartAutosave starts the autosave job for session and returns its cancel
// function.
func (s *ClientServices) StartAutosave(ctx context.Context, session models.ExamSession, language LanguageResolver) (cancel func()) {
	s.AutosaveJob.Start(ctx, session, language, s.autosaveInterval)
	return s.AutosaveJob.Stop
}
