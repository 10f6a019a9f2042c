package store

import (
	"context"

	"github.com/MKhiriev/go-exam-drafts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DraftRepository persists drafts on the draft service side. A draft is
// identified by (user, exam, problem, language); saving the same slot again
// replaces its code.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft models.DraftRecord) error
	GetDraft(ctx context.Context, req models.LoadDraftRequest) (models.DraftRecord, error)
}
