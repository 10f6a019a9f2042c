package client

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/service"
	"github.com/MKhiriev/go-exam-drafts/internal/utils"
	"github.com/MKhiriev/go-exam-drafts/models"
)

func TestNewSession(t *testing.T) {
	exam := config.Exam{
		ExamID:    "exam-1",
		Problems:  []string{"p1", "p2"},
		Languages: []string{"1=C", "2=Python"},
	}

	t.Run("explicit user id wins", func(t *testing.T) {
		e := exam
		e.UserID = "u1"

		s, err := newSession(e, "not-a-jwt")
		require.NoError(t, err)
		assert.Equal(t, "u1", s.UserID)
		assert.Equal(t, "exam-1", s.ExamID)
		assert.Len(t, s.Problems, 2)
		assert.Len(t, s.Languages, 2)
	})

	t.Run("user id from token subject", func(t *testing.T) {
		token, err := utils.GenerateJWTToken("exam-platform", "u42", time.Hour, "secret")
		require.NoError(t, err)

		s, err := newSession(exam, token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, "u42", s.UserID)
	})

	t.Run("broken token", func(t *testing.T) {
		_, err := newSession(exam, "garbage")
		assert.Error(t, err)
	})
}

type stubUI struct {
	runErr error
	ran    bool
}

func (s *stubUI) Run(context.Context) error {
	s.ran = true
	return s.runErr
}

func (s *stubUI) Language() string { return "C" }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type stubAutosave struct {
	started  bool
	stopped  bool
	language string
}

func (s *stubAutosave) Start(_ context.Context, _ models.ExamSession, language service.LanguageResolver, _ time.Duration) {
	s.started = true
	s.language = language()
}

func (s *stubAutosave) Stop() { s.stopped = true }

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		runErr  error
		wantErr bool
	}{
		{name: "user quits"},
		{name: "ui fails", runErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			autosave := &stubAutosave{}
			ui := &stubUI{runErr: tt.runErr}
			var closed bool

			a := &App{
				services: &service.ClientServices{AutosaveJob: autosave},
				ui:       ui,
				session:  models.NewExamSession("u1", "e1", []string{"p1"}, []string{"C"}),
				closers:  []io.Closer{closerFunc(func() error { closed = true; return nil })},
				logger:   logger.Nop(),
			}

			err := a.Run()

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.runErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, ui.ran)
			assert.True(t, autosave.started)
			assert.Equal(t, "C", autosave.language)
			// автосохранение и хранилище закрываются в любом случае
			assert.True(t, autosave.stopped)
			assert.True(t, closed)
		})
	}
}
