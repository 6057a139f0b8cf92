// Package tui implements the interactive glossary browse panel.
package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vgdata/localterm/anchor"
	"github.com/vgdata/localterm/config"
	"github.com/vgdata/localterm/export"
	"github.com/vgdata/localterm/glossary"
	"github.com/vgdata/localterm/settings"
)

// --- Enums & Types ---

type sessionState int

const (
	stateBrowse sessionState = iota
	stateSearch
)

// Sort orders for the row view. File order is the glossary's own
// insertion order.
const (
	sortFileOrder = iota
	sortTerm
	sortLang1
	sortLang2
	sortModes
)

type (
	glossaryLoadedMsg struct {
		gloss *glossary.Glossary
		err   error
	}
	actionDoneMsg  struct{ status string }
	actionFailMsg  struct{ err error }
	resetStatusMsg struct{}
)

// --- Commands ---

func loadCmd(path1, path2 string, trackChanges bool) tea.Cmd {
	return func() tea.Msg {
		g, err := glossary.Load(path1, path2, trackChanges)
		return glossaryLoadedMsg{gloss: g, err: err}
	}
}

func copyCmd(row glossary.DisplayRow, urlBase string) tea.Cmd {
	return func() tea.Msg {
		if err := export.Copy(row, urlBase); err != nil {
			return actionFailMsg{err}
		}
		return actionDoneMsg{"Copied to clipboard"}
	}
}

func noteCmd(row glossary.DisplayRow, lang1, lang2, urlBase string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteNote(row, lang1, lang2, urlBase)
		if err != nil {
			return actionFailMsg{err}
		}
		if err := export.OpenFile(path); err != nil {
			return actionFailMsg{err}
		}
		return actionDoneMsg{fmt.Sprintf("Note written to %s", path)}
	}
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := export.OpenURL(url); err != nil {
			return actionFailMsg{err}
		}
		return actionDoneMsg{fmt.Sprintf("Opened %s", url)}
	}
}

func openFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := export.OpenFile(path); err != nil {
			return actionFailMsg{err}
		}
		return actionDoneMsg{fmt.Sprintf("Opened %s", filepath.Base(path))}
	}
}

func resetStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return resetStatusMsg{}
	})
}

// --- Styles ---

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// rowStyle returns the lipgloss style for a row's classification,
// falling back to the user-configured colors for normal rows.
func rowStyle(class glossary.Class, userFg, userBg string) lipgloss.Style {
	fg, bg := class.Colors(userFg, userBg)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

// --- Model ---

// Model is the bubbletea model for the browse panel.
type Model struct {
	state sessionState

	proj  *config.Project
	sts   *settings.Settings
	files []string
	i1    int
	i2    int

	gloss *glossary.Glossary
	view  []glossary.DisplayRow

	search   textinput.Model
	filter   string
	sortMode int
	cursor   int

	status        string
	defaultStatus string
	err           error

	width  int
	height int
}

// New builds the panel model from resolved configuration and settings.
// The initial glossary load happens in Init.
func New(proj *config.Project, sts *settings.Settings) Model {
	files := config.ListLanguageFiles(proj.GlossaryDir)
	i1, i2 := config.ResolveSelection(files, sts.Lang1File, sts.Lang2File)

	search := textinput.New()
	search.Placeholder = "search term"
	search.CharLimit = 64
	search.Width = 30

	defaultStatus := "/: search | s: sort | enter: open | c: copy | n: note | o/O: open file | 1/2: language | t: changes | q: quit"
	return Model{
		proj:          proj,
		sts:           sts,
		files:         files,
		i1:            i1,
		i2:            i2,
		search:        search,
		status:        defaultStatus,
		defaultStatus: defaultStatus,
	}
}

func (m Model) urlBase() string {
	if m.sts.URLBase != "" {
		return m.sts.URLBase
	}
	return m.proj.URLBase
}

func (m Model) selectedPaths() (string, string) {
	if m.i1 < 0 {
		return "", ""
	}
	path1 := m.files[m.i1]
	path2 := ""
	if m.i2 >= 0 && m.i2 != m.i1 {
		path2 = m.files[m.i2]
	}
	return path1, path2
}

func (m Model) reload() tea.Cmd {
	path1, path2 := m.selectedPaths()
	if path1 == "" {
		return nil
	}
	return loadCmd(path1, path2, m.sts.TrackChanges)
}

// Init triggers the initial glossary load.
func (m Model) Init() tea.Cmd {
	return m.reload()
}

// currentRow returns the row under the cursor, or false when the view
// is empty.
func (m Model) currentRow() (glossary.DisplayRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return glossary.DisplayRow{}, false
	}
	return m.view[m.cursor], true
}

// rebuildView applies the current filter and sort to the loaded rows
// and clamps the cursor.
func (m *Model) rebuildView() {
	if m.gloss == nil {
		m.view = nil
		m.cursor = 0
		return
	}
	m.view = sortRows(filterRows(m.gloss.Rows, m.filter, m.sts.SearchLang), m.sortMode)
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case glossaryLoadedMsg:
		if msg.err != nil {
			// Keep the previous generation on a failed reload.
			m.err = msg.err
			m.status = fmt.Sprintf("Load failed: %v", msg.err)
			return m, resetStatusCmd()
		}
		m.err = nil
		m.gloss = msg.gloss
		m.rebuildView()
		if msg.gloss.SecondaryErr != nil {
			m.status = fmt.Sprintf("Second language skipped: %v", msg.gloss.SecondaryErr)
			return m, resetStatusCmd()
		}
		return m, nil

	case actionDoneMsg:
		m.status = msg.status
		return m, resetStatusCmd()

	case actionFailMsg:
		m.status = fmt.Sprintf("Error: %v", msg.err)
		return m, resetStatusCmd()

	case resetStatusMsg:
		m.status = m.defaultStatus
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateSearch:
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = stateBrowse
		m.search.Blur()
		return m, nil
	case "esc":
		m.state = stateBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.filter = ""
		m.rebuildView()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter = m.search.Value()
	m.rebuildView()
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.state = stateSearch
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		m.search.SetValue("")
		m.filter = ""
		m.rebuildView()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}
		return m, nil

	case "home", "g":
		m.cursor = 0
		return m, nil

	case "end", "G":
		m.cursor = len(m.view) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case "s":
		m.sortMode = (m.sortMode + 1) % sortModes
		m.rebuildView()
		m.status = "Sort: " + sortName(m.sortMode)
		return m, resetStatusCmd()

	case "enter":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		url := anchor.Compose(row.Anchor, m.urlBase())
		if url == "" {
			m.status = "No anchor for this term"
			return m, resetStatusCmd()
		}
		return m, openURLCmd(url)

	case "c":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		return m, copyCmd(row, m.urlBase())

	case "n":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		lang1, lang2 := "", ""
		if m.gloss != nil {
			lang1, lang2 = m.gloss.Lang1Name, m.gloss.Lang2Name
		}
		return m, noteCmd(row, lang1, lang2, m.urlBase())

	case "o":
		if m.gloss == nil {
			return m, nil
		}
		return m, openFileCmd(m.gloss.Lang1File)

	case "O":
		if m.gloss == nil || m.gloss.Lang2File == "" {
			return m, nil
		}
		return m, openFileCmd(m.gloss.Lang2File)

	case "1":
		if len(m.files) == 0 {
			return m, nil
		}
		m.i1 = (m.i1 + 1) % len(m.files)
		return m, m.persistSelection()

	case "2":
		if len(m.files) == 0 {
			return m, nil
		}
		m.i2 = (m.i2 + 1) % len(m.files)
		return m, m.persistSelection()

	case "t":
		m.sts.TrackChanges = !m.sts.TrackChanges
		return m, m.persistAndReload()

	case "a":
		m.sts.ShowAnchor = !m.sts.ShowAnchor
		if err := settings.Save(m.sts); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, resetStatusCmd()
		}
		return m, nil

	case "l":
		if m.sts.SearchLang == 2 {
			m.sts.SearchLang = 1
		} else {
			m.sts.SearchLang = 2
		}
		if err := settings.Save(m.sts); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, resetStatusCmd()
		}
		m.rebuildView()
		return m, nil

	case "r":
		return m, m.reload()
	}
	return m, nil
}

// persistSelection stores the language file choice (by file name, not
// position) and reloads everything from scratch.
func (m *Model) persistSelection() tea.Cmd {
	if m.i1 >= 0 {
		m.sts.Lang1File = filepath.Base(m.files[m.i1])
	}
	if m.i2 >= 0 {
		m.sts.Lang2File = filepath.Base(m.files[m.i2])
	}
	return m.persistAndReload()
}

func (m *Model) persistAndReload() tea.Cmd {
	if err := settings.Save(m.sts); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return resetStatusCmd()
	}
	return m.reload()
}

// --- Filtering & sorting ---

// filterRows keeps rows whose term or selected-language translation
// contains the query, case-insensitively. searchLang selects which
// translation column is matched (1 or 2).
func filterRows(rows []glossary.DisplayRow, query string, searchLang int) []glossary.DisplayRow {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	var out []glossary.DisplayRow
	for _, r := range rows {
		haystack := r.Key
		if searchLang == 2 {
			haystack += "\x00" + r.Second
		} else {
			haystack += "\x00" + r.Target
		}
		if strings.Contains(strings.ToLower(haystack), q) {
			out = append(out, r)
		}
	}
	return out
}

// sortRows returns rows ordered by the given sort mode. File order
// returns the input unchanged; other modes sort a copy, stably, so
// duplicate rows keep their relative file order.
func sortRows(rows []glossary.DisplayRow, mode int) []glossary.DisplayRow {
	if mode == sortFileOrder {
		return rows
	}
	out := make([]glossary.DisplayRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		switch mode {
		case sortLang1:
			return out[i].Target < out[j].Target
		case sortLang2:
			return out[i].Second < out[j].Second
		default:
			return out[i].Key < out[j].Key
		}
	})
	return out
}

func sortName(mode int) string {
	switch mode {
	case sortTerm:
		return "term"
	case sortLang1:
		return "language 1"
	case sortLang2:
		return "language 2"
	default:
		return "file order"
	}
}
