package service

import (
	"context"

	"github.com/MKhiriev/go-exam-drafts/models"
)

// DraftService is the draft service side of draft persistence. Drafts are
// scoped by draft.UserID, which the transport takes from the token.
type DraftService interface {
	SaveDraft(ctx context.Context, draft models.DraftRecord) error
	// LoadDraft returns store.ErrDraftNotFound when the slot is empty.
	LoadDraft(ctx context.Context, req models.LoadDraftRequest) (models.DraftRecord, error)
}

// DraftServiceWrapper decorates a DraftService, e.g. with validation.
type DraftServiceWrapper interface {
	Wrap(DraftService) DraftService
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
