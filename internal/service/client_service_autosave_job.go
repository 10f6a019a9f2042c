package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/models"
)

const (
	DefaultAutosaveInterval = 30 * time.Second

	defaultPushTimeout = 5 * time.Second
)

type clientAutosaveJob struct {
	drafts      ClientDraftService
	pushTimeout time.Duration
	logger      *logger.Logger

	pushed atomic.Int64
	failed atomic.Int64

	// runMu serializes Start and Stop, so concurrent callers can not orphan
	// a running goroutine.
	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientAutosaveJob creates a job that calls drafts.Push for every problem
// of a session on a ticker. The job is idle until Start is called.
// pushTimeout bounds each push; <= 0 means 5s.
func NewClientAutosaveJob(drafts ClientDraftService, pushTimeout time.Duration, logger *logger.Logger) ClientAutosaveJob {
	if pushTimeout <= 0 {
		pushTimeout = defaultPushTimeout
	}
	return &clientAutosaveJob{drafts: drafts, pushTimeout: pushTimeout, logger: logger}
}

func (j *clientAutosaveJob) Start(ctx context.Context, session models.ExamSession, language LanguageResolver, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}

	j.runMu.Lock()
	defer j.runMu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.flush(jobCtx, session, language)
			}
		}
	}()
}

func (j *clientAutosaveJob) Stop() {
	j.runMu.Lock()
	defer j.runMu.Unlock()

	j.stopLocked()
}

// stopLocked cancels the current run and waits for it. runMu must be held.
func (j *clientAutosaveJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}

// flush pushes the code draft of every problem in the current language.
// Problems without a local draft are skipped, failures are logged and do
// not stop the remaining pushes.
func (j *clientAutosaveJob) flush(ctx context.Context, session models.ExamSession, language LanguageResolver) {
	lang := ""
	if language != nil {
		lang = language()
	}
	if lang == "" {
		return
	}

	for _, problem := range session.Problems {
		if ctx.Err() != nil {
			return
		}

		key := session.CodeKey(problem.ID, lang)

		pushCtx, cancel := context.WithTimeout(ctx, j.pushTimeout)
		err := j.drafts.Push(pushCtx, key)
		cancel()

		switch {
		case err == nil:
			j.pushed.Add(1)
		case errors.Is(err, store.ErrDraftNotFound):
		default:
			j.failed.Add(1)
			j.logger.Warn().Err(err).
				Str("func", "clientAutosaveJob.flush").
				Str("exam_id", session.ExamID).
				Str("problem_id", problem.ID).
				Str("language", lang).
				Int64("failed_total", j.failed.Load()).
				Msg("failed to auto-save draft")
		}
	}
}
