// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/service"
	"github.com/MKhiriev/go-exam-drafts/models"
)

type editorPane int

const (
	paneCode editorPane = iota
	paneInput
)

const (
	statusTTL   = 2 * time.Second
	inputHeight = 5
)

// editorModel is the whole exam screen: problem list on the left, code
// and input editors on the right, status and hot keys at the bottom.
//
// Every edit is written to the local cache before the next key is handled.
// Switching problem or language reloads both editors in the background.
// Load and save failures are only logged; an explicit push reports its
// outcome.
type editorModel struct {
	ctx       context.Context
	drafts    service.ClientDraftService
	session   models.ExamSession
	language  *languageSelection
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	problems problemListModel
	langIdx  int

	code    textarea.Model
	input   textarea.Model
	pane    editorPane
	spinner spinner.Model

	loading bool
	loadSeq int
	pushing bool

	status        string
	errMsg        string
	overlay       *errorOverlayModel
	showBuildInfo bool

	width  int
	height int
}

func newEditorModel(
	ctx context.Context,
	drafts service.ClientDraftService,
	session models.ExamSession,
	language *languageSelection,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) editorModel {
	code := textarea.New()
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.MaxHeight = 0
	code.Placeholder = "Код решения"
	code.Focus()

	input := textarea.New()
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.Placeholder = "Входные данные"
	input.SetHeight(inputHeight)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := editorModel{
		ctx:       ctx,
		drafts:    drafts,
		session:   session,
		language:  language,
		buildInfo: buildInfo,
		logger:    logger,
		problems:  newProblemListModel(session.Problems, 0),
		code:      code,
		input:     input,
		spinner:   s,
		loading:   true,
	}
	m.language.set(m.currentLanguage().Name)

	return m
}

func (m editorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadCursor())
}

func (m editorModel) currentLanguage() models.Language {
	if len(m.session.Languages) == 0 {
		return models.Language{}
	}
	return m.session.Languages[m.langIdx]
}

func (m editorModel) currentProblemID() string {
	p, _ := m.problems.current()
	return p.ID
}

func (m editorModel) codeKey() models.ArtifactKey {
	return m.session.CodeKey(m.currentProblemID(), m.currentLanguage().Name)
}

func (m editorModel) inputKey() models.ArtifactKey {
	return m.session.Key(models.KindInput, m.currentProblemID(), "")
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case cursorLoadedMsg:
		m.problems = newProblemListModel(m.session.Problems, msg.index)
		return m.startLoad()

	case draftLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// draft failures never reach the screen, the editor starts empty
			m.logger.Err(msg.err).Str("func", "editorModel.Update").Msg("failed to load draft")
		}
		m.code.SetValue(msg.code)
		m.input.SetValue(msg.input)
		return m, nil

	case pushDoneMsg:
		m.pushing = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "editorModel.Update").Str("key", msg.key.String()).Msg("push failed")
			m.overlay = &errorOverlayModel{message: humanizeServerUnavailableError(msg.err)}
			return m, nil
		}
		return m.setStatus("Отправлено на сервер")

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		return m.setStatus("Код скопирован")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.pushing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m editorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.close) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.close, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.nextProblem):
		return m.switchProblem(1)
	case key.Matches(msg, keys.prevProblem):
		return m.switchProblem(-1)
	case key.Matches(msg, keys.nextLanguage):
		return m.switchLanguage()
	case key.Matches(msg, keys.switchPane):
		return m.togglePane(), nil
	case key.Matches(msg, keys.push):
		return m.startPush()
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.code.Value())
	}

	if m.loading {
		return m, nil
	}

	return m.edit(msg)
}

// edit forwards msg to the focused editor and saves the text when it changed.
func (m editorModel) edit(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		before string
		after  string
		k      models.ArtifactKey
	)

	switch m.pane {
	case paneInput:
		before = m.input.Value()
		m.input, cmd = m.input.Update(msg)
		after, k = m.input.Value(), m.inputKey()
	default:
		before = m.code.Value()
		m.code, cmd = m.code.Update(msg)
		after, k = m.code.Value(), m.codeKey()
	}

	if after == before {
		return m, cmd
	}

	if err := m.drafts.Save(m.ctx, k, after); err != nil {
		m.logger.Err(err).Str("func", "editorModel.edit").Str("key", k.String()).Msg("failed to save draft")
	}

	return m, cmd
}

func (m editorModel) switchProblem(delta int) (tea.Model, tea.Cmd) {
	problems, changed := m.problems.move(delta)
	if !changed {
		return m, nil
	}
	m.problems = problems

	if err := m.drafts.SaveCursor(m.ctx, m.session.UserID, m.session.ExamID, m.problems.idx); err != nil {
		m.logger.Err(err).Str("func", "editorModel.switchProblem").Msg("failed to save cursor")
	}

	return m.startLoad()
}

func (m editorModel) switchLanguage() (tea.Model, tea.Cmd) {
	if len(m.session.Languages) < 2 {
		return m, nil
	}
	m.langIdx = (m.langIdx + 1) % len(m.session.Languages)
	m.language.set(m.currentLanguage().Name)

	return m.startLoad()
}

func (m editorModel) togglePane() editorModel {
	if m.pane == paneCode {
		m.pane = paneInput
		m.code.Blur()
		m.input.Focus()
		return m
	}
	m.pane = paneCode
	m.input.Blur()
	m.code.Focus()
	return m
}

// startLoad begins loading the open problem. Editing is blocked until the
// matching draftLoadedMsg arrives.
func (m editorModel) startLoad() (tea.Model, tea.Cmd) {
	if _, ok := m.problems.current(); !ok {
		m.loading = false
		m.overlay = &errorOverlayModel{message: ErrNoProblems.Error()}
		return m, nil
	}

	m.loadSeq++
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadDraft(m.loadSeq, m.codeKey(), m.inputKey()))
}

func (m editorModel) startPush() (tea.Model, tea.Cmd) {
	if m.pushing || m.loading {
		return m, nil
	}
	m.pushing = true
	return m, tea.Batch(m.spinner.Tick, m.cmdPush(m.codeKey()))
}

func (m editorModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.errMsg = ""
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m editorModel) cmdLoadCursor() tea.Cmd {
	ctx, drafts, session := m.ctx, m.drafts, m.session
	return func() tea.Msg {
		return cursorLoadedMsg{index: drafts.LoadCursor(ctx, session.UserID, session.ExamID)}
	}
}

func (m editorModel) cmdLoadDraft(seq int, codeKey, inputKey models.ArtifactKey) tea.Cmd {
	ctx, drafts := m.ctx, m.drafts
	return func() tea.Msg {
		code, err := drafts.Load(ctx, codeKey)
		if err != nil {
			return draftLoadedMsg{seq: seq, err: err}
		}
		input, err := drafts.Load(ctx, inputKey)
		if err != nil {
			return draftLoadedMsg{seq: seq, err: err}
		}
		return draftLoadedMsg{seq: seq, code: code, input: input}
	}
}

func (m editorModel) cmdPush(k models.ArtifactKey) tea.Cmd {
	ctx, drafts := m.ctx, m.drafts
	return func() tea.Msg {
		return pushDoneMsg{key: k, err: drafts.Push(ctx, k)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m *editorModel) resize(width, height int) {
	m.width, m.height = width, height

	editorWidth := width - problemListWidth - 10
	if editorWidth < 20 {
		editorWidth = 20
	}
	codeHeight := height - inputHeight - 14
	if codeHeight < 3 {
		codeHeight = 3
	}

	m.code.SetWidth(editorWidth)
	m.code.SetHeight(codeHeight)
	m.input.SetWidth(editorWidth)
}

func (m editorModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.session))
	}

	codePane, inputPane := paneStyle, paneStyle
	if m.pane == paneCode {
		codePane = focusedStyle
	} else {
		inputPane = focusedStyle
	}

	header := titleStyle.Render(fmt.Sprintf("%s · %s", m.currentProblemID(), m.currentLanguage().Name))
	right := lipgloss.JoinVertical(lipgloss.Left,
		header,
		codePane.Render(m.code.View()),
		"Ввод",
		inputPane.Render(m.input.View()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.problems.View(), right)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+n/ctrl+p задача  ctrl+l язык  ctrl+t ввод/код  ctrl+s отправить  ctrl+y копировать  f1 инфо  ctrl+c выход"))

	if m.overlay != nil {
		b.WriteString("\n\n")
		b.WriteString(m.overlay.View())
	}

	return appStyle.Render(b.String())
}

func (m editorModel) statusLine() string {
	switch {
	case m.loading:
		return m.spinner.View() + " Загрузка черновика..."
	case m.pushing:
		return m.spinner.View() + " Отправка на сервер..."
	case m.errMsg != "":
		return errorStyle.Render(m.errMsg)
	case m.status != "":
		return statusStyle.Render(m.status)
	}
	return helpStyle.Render("Черновик сохраняется автоматически")
}
