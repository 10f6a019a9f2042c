package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/service"
	"github.com/MKhiriev/go-exam-drafts/models"
)

type TUI struct {
	drafts    service.ClientDraftService
	session   models.ExamSession
	language  *languageSelection
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(drafts service.ClientDraftService, session models.ExamSession, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if len(session.Problems) == 0 {
		return nil, ErrNoProblems
	}
	if len(session.Languages) == 0 {
		return nil, errors.New("в экзамене нет языков")
	}

	t := &TUI{
		drafts:    drafts,
		session:   session,
		language:  &languageSelection{},
		buildInfo: buildInfo,
		logger:    logger,
	}
	t.language.set(session.Languages[0].Name)

	return t, nil
}

// Language returns the language currently open in the editor. It is safe to
// call from any goroutine and is meant for the autosave job.
func (t *TUI) Language() string {
	return t.language.Name()
}

// Run shows the editor until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newEditorModel(ctx, t.drafts, t.session, t.language, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
