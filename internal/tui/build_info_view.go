// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-exam-drafts/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, session models.ExamSession) string {
	var b strings.Builder

	b.WriteString("Название приложения: Exam Drafts\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString("Экзамен: ")
	b.WriteString(valueOrNA(session.ExamID))
	b.WriteString("\n")
	b.WriteString("Пользователь: ")
	b.WriteString(valueOrNA(session.UserID))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
