// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Problem is one task of an exam.
type Problem struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Language is an allowed programming language. ID is what the UI selects,
// Name is what keys and templates are built from.
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExamSession holds the state of one user taking one exam.
type ExamSession struct {
	UserID    string
	ExamID    string
	Problems  []Problem
	Languages []Language
}

// LanguageName resolves a language id to its display name.
func (s ExamSession) LanguageName(id string) (string, bool) {
	for _, l := range s.Languages {
		if l.ID == id {
			return l.Name, true
		}
	}
	return "", false
}

// Key builds the artifact key of a problem in this session.
func (s ExamSession) Key(kind Kind, problemID, language string) ArtifactKey {
	return ArtifactKey{
		Kind:      kind,
		UserID:    s.UserID,
		ProblemID: problemID,
		ExamID:    s.ExamID,
		Language:  language,
	}
}

// CodeKey is a shortcut for Key(KindCode, ...).
func (s ExamSession) CodeKey(problemID, language string) ArtifactKey {
	return s.Key(KindCode, problemID, language)
}

// NewExamSession builds a session from plain identifiers. Language entries are
// either "name" or "id=name".
func NewExamSession(userID, examID string, problems, languages []string) ExamSession {
	session := ExamSession{UserID: userID, ExamID: examID}

	for _, p := range problems {
		if p = strings.TrimSpace(p); p != "" {
			session.Problems = append(session.Problems, Problem{ID: p})
		}
	}

	for _, l := range languages {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		id, name, found := strings.Cut(l, "=")
		if !found {
			name = id
		}
		session.Languages = append(session.Languages, Language{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name)})
	}

	return session
}
