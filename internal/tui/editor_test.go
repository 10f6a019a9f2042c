package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/models"
)

// fakeDrafts is an in-memory ClientDraftService keyed by artifact token.
type fakeDrafts struct {
	mu      sync.Mutex
	texts   map[string]string
	cursor  int
	saves   int
	pushed  []models.ArtifactKey
	pushErr error
}

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{texts: map[string]string{}}
}

func (f *fakeDrafts) Load(_ context.Context, k models.ArtifactKey) (string, error) {
	token, err := k.Token()
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.texts[token], nil
}

func (f *fakeDrafts) Save(_ context.Context, k models.ArtifactKey, plaintext string) error {
	token, err := k.Token()
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts[token] = plaintext
	f.saves++
	return nil
}

func (f *fakeDrafts) Push(_ context.Context, k models.ArtifactKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, k)
	return f.pushErr
}

func (f *fakeDrafts) SaveCursor(_ context.Context, _, _ string, idx int) error {
	f.cursor = idx
	return nil
}

func (f *fakeDrafts) LoadCursor(context.Context, string, string) int {
	return f.cursor
}

func (f *fakeDrafts) text(t *testing.T, k models.ArtifactKey) string {
	t.Helper()
	token, err := k.Token()
	require.NoError(t, err)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.texts[token]
}

func testSession() models.ExamSession {
	return models.NewExamSession("u1", "exam-1", []string{"p1", "p2"}, []string{"1=C", "2=Python"})
}

func newTestEditor(drafts *fakeDrafts) editorModel {
	return newEditorModel(context.Background(), drafts, testSession(), &languageSelection{}, models.AppBuildInfo{}, logger.Nop())
}

func update(t *testing.T, m editorModel, msg tea.Msg) (editorModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	em, ok := next.(editorModel)
	require.True(t, ok)
	return em, cmd
}

// loaded drives the editor through the cursor and draft loads.
func loaded(t *testing.T, drafts *fakeDrafts) editorModel {
	t.Helper()
	m := newTestEditor(drafts)

	m, _ = update(t, m, m.cmdLoadCursor()())
	require.True(t, m.loading)

	msg := m.cmdLoadDraft(m.loadSeq, m.codeKey(), m.inputKey())()
	m, _ = update(t, m, msg)
	require.False(t, m.loading)
	return m
}

func typeText(t *testing.T, m editorModel, s string) editorModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestEditor_LoadsDraftsOfRememberedProblem(t *testing.T) {
	drafts := newFakeDrafts()
	drafts.cursor = 1
	s := testSession()
	require.NoError(t, drafts.Save(context.Background(), s.CodeKey("p2", "C"), "int main() {}"))
	require.NoError(t, drafts.Save(context.Background(), s.Key(models.KindInput, "p2", ""), "1 2"))

	m := loaded(t, drafts)

	assert.Equal(t, "p2", m.currentProblemID())
	assert.Equal(t, "int main() {}", m.code.Value())
	assert.Equal(t, "1 2", m.input.Value())
}

func TestEditor_KeystrokeSavesCode(t *testing.T) {
	drafts := newFakeDrafts()
	m := loaded(t, drafts)

	m = typeText(t, m, "x")
	m = typeText(t, m, "y")

	assert.Equal(t, "xy", drafts.text(t, m.codeKey()))
	assert.Equal(t, 2, drafts.saves)
}

func TestEditor_InputPaneSavesInput(t *testing.T) {
	drafts := newFakeDrafts()
	m := loaded(t, drafts)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, paneInput, m.pane)

	m = typeText(t, m, "42")

	assert.Equal(t, "42", drafts.text(t, m.inputKey()))
	assert.Empty(t, drafts.text(t, m.codeKey()))
}

func TestEditor_NoEditsWhileLoading(t *testing.T) {
	drafts := newFakeDrafts()
	m := newTestEditor(drafts)
	require.True(t, m.loading)

	m = typeText(t, m, "x")

	assert.Zero(t, drafts.saves)
	assert.Empty(t, m.code.Value())
}

func TestEditor_SwitchProblem(t *testing.T) {
	drafts := newFakeDrafts()
	m := loaded(t, drafts)
	seq := m.loadSeq

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})

	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, seq+1, m.loadSeq)
	assert.Equal(t, "p2", m.currentProblemID())
	assert.Equal(t, 1, drafts.cursor)

	// на последней задаче дальше не двигаемся
	m, _ = update(t, m, m.cmdLoadDraft(m.loadSeq, m.codeKey(), m.inputKey())())
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Nil(t, cmd)
	assert.Equal(t, "p2", m.currentProblemID())
}

func TestEditor_StaleLoadIsDropped(t *testing.T) {
	drafts := newFakeDrafts()
	m := loaded(t, drafts)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = update(t, m, draftLoadedMsg{seq: m.loadSeq - 1, code: "stale"})

	assert.True(t, m.loading)
	assert.Empty(t, m.code.Value())
}

func TestEditor_SwitchLanguage(t *testing.T) {
	drafts := newFakeDrafts()
	lang := &languageSelection{}
	m := newEditorModel(context.Background(), drafts, testSession(), lang, models.AppBuildInfo{}, logger.Nop())
	assert.Equal(t, "C", lang.Name())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "Python", lang.Name())
	assert.Equal(t, "Python", m.codeKey().Language)

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "C", lang.Name())
}

func TestEditor_Push(t *testing.T) {
	drafts := newFakeDrafts()
	m := loaded(t, drafts)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.pushing)

	m, _ = update(t, m, m.cmdPush(m.codeKey())())
	assert.False(t, m.pushing)
	assert.Nil(t, m.overlay)
	assert.NotEmpty(t, m.status)
	require.Len(t, drafts.pushed, 1)
	assert.Equal(t, models.KindCode, drafts.pushed[0].Kind)
}

func TestEditor_PushErrorShowsOverlay(t *testing.T) {
	drafts := newFakeDrafts()
	drafts.pushErr = errors.New("dial tcp 127.0.0.1:8080: connection refused")
	m := loaded(t, drafts)

	m, _ = update(t, m, m.cmdPush(m.codeKey())())
	require.NotNil(t, m.overlay)
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", m.overlay.message)

	// пока открыт оверлей, ввод не попадает в редактор
	m = typeText(t, m, "x")
	assert.Empty(t, m.code.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.overlay)
}

func TestEditor_QuitKey(t *testing.T) {
	m := newTestEditor(newFakeDrafts())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNew_RequiresProblemsAndLanguages(t *testing.T) {
	_, err := New(newFakeDrafts(), models.ExamSession{UserID: "u1", ExamID: "e1"}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoProblems)

	_, err = New(newFakeDrafts(), models.NewExamSession("u1", "e1", []string{"p1"}, nil), models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)

	ui, err := New(newFakeDrafts(), testSession(), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "C", ui.Language())
}

func Test_fitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "Зад...", fitText("Задача номер один", 6))
}

func TestEditor_LoadErrorStaysSilent(t *testing.T) {
	m := newTestEditor(newFakeDrafts())
	m, _ = update(t, m, m.cmdLoadCursor()())

	m, _ = update(t, m, draftLoadedMsg{seq: m.loadSeq, err: models.ErrInvalidKey})

	assert.False(t, m.loading)
	assert.Nil(t, m.overlay)
	assert.Empty(t, m.errMsg)
	assert.Empty(t, m.code.Value())
}
