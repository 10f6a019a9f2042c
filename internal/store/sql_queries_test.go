// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-drafts/models"
)

func Test_buildSaveDraftQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	draft := models.DraftRecord{UserID: "u1", ExamID: "e1", ProblemID: "p1", Language: "C", Code: "blob"}

	query, args, err := buildSaveDraftQuery(draft, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into drafts")
	assert.Contains(t, q, "on conflict (user_id, exam_id, problem_id, language)")
	assert.Contains(t, q, "do update set code = excluded.code")
	assert.Contains(t, query, "$7")

	assert.Equal(t, []any{"u1", "e1", "p1", "C", "blob", now, now}, args)
}

func Test_buildGetDraftQuery(t *testing.T) {
	req := models.LoadDraftRequest{UserID: "u1", ExamID: "e1", ProblemID: "p1", Language: "C"}

	query, args, err := buildGetDraftQuery(req)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select user_id, exam_id, problem_id, language, code, updated_at")
	assert.Contains(t, q, "from drafts")
	for _, col := range []string{"user_id = $", "exam_id = $", "problem_id = $", "language = $"} {
		assert.Contains(t, q, col)
	}

	assert.ElementsMatch(t, []any{"u1", "e1", "p1", "C"}, args)
}
