package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exam-drafts/internal/validators"
	"github.com/MKhiriev/go-exam-drafts/models"
)

// DraftValidationService rejects malformed requests before they reach the
// wrapped DraftService.
type DraftValidationService struct {
	inner     DraftService
	validator validators.Validator
}

func NewDraftValidationService(validator validators.Validator) DraftServiceWrapper {
	return &DraftValidationService{validator: validator}
}

func (v *DraftValidationService) SaveDraft(ctx context.Context, draft models.DraftRecord) error {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveDraft(ctx, draft)
}

func (v *DraftValidationService) LoadDraft(ctx context.Context, req models.LoadDraftRequest) (models.DraftRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DraftRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.LoadDraft(ctx, req)
}

func (v *DraftValidationService) Wrap(inner DraftService) DraftService {
	v.inner = inner
	return v
}
