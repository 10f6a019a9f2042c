package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-exam-drafts/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var draftColumns = []string{"user_id", "exam_id", "problem_id", "language", "code", "updated_at"}

func buildSaveDraftQuery(draft models.DraftRecord, now time.Time) (string, []any, error) {
	return psql.
		Insert("drafts").
		Columns("user_id", "exam_id", "problem_id", "language", "code", "created_at", "updated_at").
		Values(draft.UserID, draft.ExamID, draft.ProblemID, draft.Language, draft.Code, now, now).
		Suffix(`ON CONFLICT (user_id, exam_id, problem_id, language)
			DO UPDATE SET code = EXCLUDED.code, updated_at = EXCLUDED.updated_at`).
		ToSql()
}

func buildGetDraftQuery(req models.LoadDraftRequest) (string, []any, error) {
	return psql.
		Select(draftColumns...).
		From("drafts").
		Where(sq.Eq{
			"user_id":    req.UserID,
			"exam_id":    req.ExamID,
			"problem_id": req.ProblemID,
			"language":   req.Language,
		}).
		ToSql()
}
