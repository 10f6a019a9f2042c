package tui

import (
	"strings"

	"github.com/MKhiriev/go-exam-drafts/models"
)

// problemListModel is the left pane: the exam's problems with the open one
// highlighted.
type problemListModel struct {
	problems []models.Problem
	idx      int
}

func newProblemListModel(problems []models.Problem, idx int) problemListModel {
	m := problemListModel{problems: problems}
	m.idx = m.clamp(idx)
	return m
}

func (m problemListModel) current() (models.Problem, bool) {
	if len(m.problems) == 0 || m.idx < 0 || m.idx >= len(m.problems) {
		return models.Problem{}, false
	}
	return m.problems[m.idx], true
}

// move shifts the selection by delta and reports whether it changed.
// The selection stops at both ends.
func (m problemListModel) move(delta int) (problemListModel, bool) {
	next := m.clamp(m.idx + delta)
	if next == m.idx {
		return m, false
	}
	m.idx = next
	return m, true
}

func (m problemListModel) clamp(idx int) int {
	switch {
	case idx < 0 || len(m.problems) == 0:
		return 0
	case idx >= len(m.problems):
		return len(m.problems) - 1
	}
	return idx
}

func (m problemListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Задачи"))
	b.WriteString("\n\n")

	if len(m.problems) == 0 {
		b.WriteString("Нет задач\n")
		return listPaneStyle.Render(b.String())
	}

	for i, p := range m.problems {
		line := fitText(problemTitle(i, p.ID, p.Title), problemListWidth-4)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return listPaneStyle.Render(b.String())
}
