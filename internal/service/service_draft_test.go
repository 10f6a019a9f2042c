package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/mock"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/internal/utils"
	"github.com/MKhiriev/go-exam-drafts/internal/validators"
	"github.com/MKhiriev/go-exam-drafts/models"
)

func newValidatedDraftService(t *testing.T) (DraftService, *mock.MockDraftRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDraftRepository(ctrl)

	svc := NewDraftValidationService(validators.NewDraftValidator()).
		Wrap(NewDraftService(repo, logger.Nop()))
	return svc, repo
}

func TestDraftService_SaveDraft(t *testing.T) {
	svc, repo := newValidatedDraftService(t)
	draft := models.DraftRecord{UserID: "u1", ExamID: "e1", ProblemID: "p1", Language: "C", Code: "blob"}

	repo.EXPECT().SaveDraft(gomock.Any(), draft).Return(nil)

	require.NoError(t, svc.SaveDraft(context.Background(), draft))
}

func TestDraftService_SaveDraft_InvalidNeverReachesStore(t *testing.T) {
	svc, _ := newValidatedDraftService(t)

	err := svc.SaveDraft(context.Background(), models.DraftRecord{UserID: "u1", ExamID: "e1", Language: "C", Code: "blob"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyProblemID)
}

func TestDraftService_SaveDraft_StoreError(t *testing.T) {
	svc, repo := newValidatedDraftService(t)
	boom := errors.New("boom")

	repo.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(boom)

	err := svc.SaveDraft(context.Background(), models.DraftRecord{UserID: "u1", ExamID: "e1", ProblemID: "p1", Language: "C", Code: "blob"})
	assert.ErrorIs(t, err, boom)
}

func TestDraftService_LoadDraft(t *testing.T) {
	svc, repo := newValidatedDraftService(t)
	req := models.LoadDraftRequest{UserID: "u1", ExamID: "e1", ProblemID: "p1", Language: "C"}

	repo.EXPECT().GetDraft(gomock.Any(), req).Return(models.DraftRecord{Code: "blob"}, nil)

	got, err := svc.LoadDraft(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "blob", got.Code)
}

func TestDraftService_LoadDraft_NotFound(t *testing.T) {
	svc, repo := newValidatedDraftService(t)

	repo.EXPECT().GetDraft(gomock.Any(), gomock.Any()).Return(models.DraftRecord{}, store.ErrDraftNotFound)

	_, err := svc.LoadDraft(context.Background(), models.LoadDraftRequest{UserID: "u1", ExamID: "e1", ProblemID: "p1", Language: "C"})
	assert.ErrorIs(t, err, store.ErrDraftNotFound)
}

func TestDraftService_NoUser(t *testing.T) {
	svc := NewDraftService(nil, logger.Nop())

	err := svc.SaveDraft(context.Background(), models.DraftRecord{ExamID: "e1"})
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.LoadDraft(context.Background(), models.LoadDraftRequest{ExamID: "e1"})
	assert.ErrorIs(t, err, ErrValidationNoUserID)
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(config.App{TokenSignKey: "secret", TokenIssuer: "exam-platform"}, logger.Nop())

	signed, err := utils.GenerateJWTToken("exam-platform", "u1", time.Hour, "secret")
	require.NoError(t, err)

	token, err := svc.ParseToken(context.Background(), signed.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", token.UserID)

	_, err = svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
