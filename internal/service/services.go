package service

import (
	"fmt"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/internal/validators"
)

type Services struct {
	AuthService    AuthService
	DraftService   DraftService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	drafts := NewDraftValidationService(validators.NewDraftValidator()).
		Wrap(NewDraftService(storages.DraftRepository, logger))

	return &Services{
		AuthService:    NewAuthService(cfg, logger),
		DraftService:   drafts,
		AppInfoService: appInfo,
	}, nil
}
