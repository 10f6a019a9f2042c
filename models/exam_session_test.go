package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewExamSession(t *testing.T) {
	s := NewExamSession("u1", "e1", []string{"p1", " ", "p2"}, []string{"71=Python", "C++", ""})

	assert.Equal(t, []Problem{{ID: "p1"}, {ID: "p2"}}, s.Problems)
	assert.Equal(t, []Language{{ID: "71", Name: "Python"}, {ID: "C++", Name: "C++"}}, s.Languages)

	name, ok := s.LanguageName("71")
	assert.True(t, ok)
	assert.Equal(t, "Python", name)

	_, ok = s.LanguageName("50")
	assert.False(t, ok)
}

func TestExamSession_CodeKey(t *testing.T) {
	s := ExamSession{UserID: "u1", ExamID: "e1"}

	assert.Equal(t, ArtifactKey{Kind: KindCode, UserID: "u1", ProblemID: "p1", ExamID: "e1", Language: "C"}, s.CodeKey("p1", "C"))
}
