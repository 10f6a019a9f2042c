package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-exam-drafts/models"
)

// TemplateProvider returns the starter program of a language.
type TemplateProvider interface {
	Default(language string) string
}

// LanguageResolver returns the name of the language currently selected in
// the editor, or "" when none is selected.
type LanguageResolver func() string

// ClientDraftService keeps exam drafts on the client. Drafts are encrypted
// with the user id before they are stored anywhere.
type ClientDraftService interface {
	// Load returns the best available text for key: the local draft, then the
	// server draft (code only), then the language template for code or "".
	// Only an invalid key is reported as an error.
	Load(ctx context.Context, key models.ArtifactKey) (string, error)

	// Save encrypts plaintext and writes it to the local cache. It never
	// touches the network.
	Save(ctx context.Context, key models.ArtifactKey, plaintext string) error

	// Push sends the locally stored ciphertext of a code key to the server.
	// It returns store.ErrDraftNotFound when nothing is stored locally.
	Push(ctx context.Context, key models.ArtifactKey) error

	// SaveCursor remembers the problem the user has open in a session.
	SaveCursor(ctx context.Context, userID, examID string, problemIndex int) error

	// LoadCursor returns the remembered problem index, 0 when unknown.
	LoadCursor(ctx context.Context, userID, examID string) int
}

// ClientAutosaveJob periodically pushes the code drafts of a session.
type ClientAutosaveJob interface {
	// Start stops any previous run and pushes every interval until ctx is
	// done or Stop is called. interval <= 0 means DefaultAutosaveInterval.
	Start(ctx context.Context, session models.ExamSession, language LanguageResolver, interval time.Duration)

	// Stop blocks until the background goroutine has exited. It is safe to
	// call more than once.
	Stop()
}
