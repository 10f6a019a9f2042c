// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-exam-drafts/internal/adapter"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
)

var ErrNoProblems = errors.New("в экзамене нет задач")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrDraftNotFound):
		return "Черновик ещё не сохранён локально"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Сессия истекла, войдите в экзамен заново"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
