// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind is the type of per-problem artifact a draft holds.
type Kind string

const (
	KindCode   Kind = "code"
	KindInput  Kind = "input"
	KindOutput Kind = "output"
)

const keySeparator = ":"

// Valid reports whether k is one of the known artifact kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCode, KindInput, KindOutput:
		return true
	}
	return false
}

// ArtifactKey identifies one draft slot: a single artifact of a single problem
// in a single exam for a single user. Language only takes part in the identity
// of code artifacts.
type ArtifactKey struct {
	Kind      Kind
	UserID    string
	ProblemID string
	ExamID    string
	Language  string
}

// BuildKey returns the storage token for the given components.
func BuildKey(kind Kind, userID, problemID, examID, language string) (string, error) {
	return ArtifactKey{
		Kind:      kind,
		UserID:    userID,
		ProblemID: problemID,
		ExamID:    examID,
		Language:  language,
	}.Token()
}

// Validate checks that every component required for the key's kind is present.
func (k ArtifactKey) Validate() error {
	switch {
	case !k.Kind.Valid():
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidKey, k.Kind)
	case blank(k.UserID):
		return fmt.Errorf("%w: user id is empty", ErrInvalidKey)
	case blank(k.ProblemID):
		return fmt.Errorf("%w: problem id is empty", ErrInvalidKey)
	case blank(k.ExamID):
		return fmt.Errorf("%w: exam id is empty", ErrInvalidKey)
	case k.Kind == KindCode && blank(k.Language):
		return fmt.Errorf("%w: language is empty", ErrInvalidKey)
	}
	return nil
}

// Token renders the key as an opaque, deterministic string.
//
// Components keep the order user, kind, problem, [language,] exam. Each one is
// query-escaped before joining, so identifiers that contain the separator can
// not produce the same token as a different tuple.
func (k ArtifactKey) Token() (string, error) {
	if err := k.Validate(); err != nil {
		return "", err
	}

	parts := []string{k.UserID, string(k.Kind), k.ProblemID}
	if k.Kind == KindCode {
		parts = append(parts, k.Language)
	}
	parts = append(parts, k.ExamID)

	for i, p := range parts {
		parts[i] = url.QueryEscape(p)
	}

	return strings.Join(parts, keySeparator), nil
}

// String is a human-readable form used in logs. It never fails.
func (k ArtifactKey) String() string {
	if k.Kind == KindCode {
		return fmt.Sprintf("%s/%s/%s/%s", k.ExamID, k.ProblemID, k.Kind, k.Language)
	}
	return fmt.Sprintf("%s/%s/%s", k.ExamID, k.ProblemID, k.Kind)
}

// CursorKey is the storage token for the last opened problem of a session.
// It has three components, so it never matches an artifact token.
func CursorKey(userID, examID string) (string, error) {
	if blank(userID) || blank(examID) {
		return "", fmt.Errorf("%w: cursor needs user id and exam id", ErrInvalidKey)
	}
	return strings.Join([]string{"cursor", url.QueryEscape(userID), url.QueryEscape(examID)}, keySeparator), nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
