package client

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-exam-drafts/internal/adapter"
	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/crypto"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/service"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/internal/templates"
	"github.com/MKhiriev/go-exam-drafts/internal/tui"
	"github.com/MKhiriev/go-exam-drafts/internal/utils"
	"github.com/MKhiriev/go-exam-drafts/models"
)

// UI is the interactive part of the client.
type UI interface {
	Run(ctx context.Context) error
	// Language returns the language open in the editor.
	Language() string
}

type App struct {
	services *service.ClientServices
	ui       UI
	session  models.ExamSession

	closers []io.Closer
	logger  *logger.Logger
}

// NewApp opens the local cache and connects every client component for the
// exam described by cfg.Exam.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	session, err := newSession(cfg.Exam, cfg.Adapter.Token)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("user_id", session.UserID).
		Str("exam_id", session.ExamID).
		Int("problems", len(session.Problems)).
		Int("languages", len(session.Languages)).
		Msg("exam session")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	cipher, err := crypto.NewDraftCipher()
	if err != nil {
		localStorage.Close()
		return nil, fmt.Errorf("create draft cipher: %w", err)
	}

	provider, err := templates.NewProvider()
	if err != nil {
		localStorage.Close()
		return nil, fmt.Errorf("load templates: %w", err)
	}

	services := service.NewClientServices(localStorage, serverAdapter, cipher, provider,
		cfg.Workers.AutosaveInterval, cfg.Adapter.RequestTimeout, logger)

	ui, err := tui.New(services.DraftService, session, buildInfo, logger)
	if err != nil {
		localStorage.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		services: services,
		ui:       ui,
		session:  session,
		closers:  []io.Closer{localStorage},
		logger:   logger,
	}, nil
}

// newSession builds the exam session, reading the user id from the token's
// subject when it is not configured explicitly.
func newSession(exam config.Exam, token string) (models.ExamSession, error) {
	userID := exam.UserID
	if userID == "" {
		sub, err := utils.ParseUserIDFromJWT(token)
		if err != nil {
			return models.ExamSession{}, fmt.Errorf("user id from token: %w", err)
		}
		userID = sub
	}

	return models.NewExamSession(userID, exam.ExamID, exam.Problems, exam.Languages), nil
}

// Run shows the editor with autosave running in the background. It returns
// when the user quits or the process gets SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.close()

	stopAutosave := a.services.StartAutosave(ctx, a.session, a.ui.Language)
	defer stopAutosave()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("exam client stopped")
	return nil
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Err(err).Msg("close")
		}
	}
}
