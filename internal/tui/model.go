package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/copyflow"
	"github.com/papapumpkin/skillarc/internal/layout"
	"github.com/papapumpkin/skillarc/internal/prompt"
)

// AppModel is the root BubbleTea model for the skill arc screen.
type AppModel struct {
	Catalog  []catalog.Category
	Params   layout.Params
	Points   []layout.Point
	Prompt   string
	Selected int

	StatusBar   StatusBar
	Detail      DetailPanel
	PromptPanel DetailPanel
	Keys        KeyMap
	ShowPrompt  bool
	Width       int
	Height      int

	session *copyflow.Session
}

// NewAppModel creates a model showing cats. session may be nil, in which
// case the copy key is inert.
func NewAppModel(cats []catalog.Category, params layout.Params, session *copyflow.Session) AppModel {
	m := AppModel{
		Params:      params,
		Keys:        DefaultKeyMap(),
		ShowPrompt:  true,
		Width:       80,
		Height:      24,
		Detail:      NewDetailPanel(DetailWidth-4, 8),
		PromptPanel: NewDetailPanel(76, PromptPanelHeight),
		session:     session,
	}
	m.StatusBar.Width = m.Width
	m.setCatalog(cats)
	m.resize()
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgCopyResult:
		if !msg.OK {
			m.setNotice(NoticeWarn, "clipboard unavailable")
		}

	case MsgCopyState:
		m.StatusBar.Copied = msg.Copied

	case MsgCatalogReloaded:
		m.setCatalog(msg.Catalog)
		m.setNotice(NoticeInfo, "catalog reloaded")

	case MsgCatalogInvalid:
		text := "catalog invalid"
		if errors.Is(msg.Err, catalog.ErrNoCatalog) {
			text = "catalog file missing"
		}
		m.setNotice(NoticeError, text+", keeping previous")
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Next):
		m.moveSelection(1)
	case key.Matches(msg, m.Keys.Prev):
		m.moveSelection(-1)
	case key.Matches(msg, m.Keys.ScrollUp):
		m.PromptPanel.ScrollUp()
	case key.Matches(msg, m.Keys.ScrollDown):
		m.PromptPanel.ScrollDown()
	case key.Matches(msg, m.Keys.Prompt):
		m.ShowPrompt = !m.ShowPrompt
		m.resize()
	case key.Matches(msg, m.Keys.Copy):
		return m, m.copyCmd()
	}
	return m, nil
}

// copyCmd writes the current prompt off the UI goroutine. The flag itself
// arrives separately as MsgCopyState through the session's change hook.
func (m AppModel) copyCmd() tea.Cmd {
	if m.session == nil {
		return nil
	}
	session, text := m.session, m.Prompt
	return func() tea.Msg {
		return MsgCopyResult{OK: session.Copy(context.Background(), text)}
	}
}

// setCatalog recomputes layout and prompt for cats, keeping the selection
// where possible.
func (m *AppModel) setCatalog(cats []catalog.Category) {
	m.Catalog = cats
	m.Points = layout.Compute(cats, m.Params)
	m.Prompt = prompt.Compose(cats)
	if m.Selected >= len(m.Points) {
		m.Selected = len(m.Points) - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
	m.StatusBar.Skills = len(m.Points)
	m.StatusBar.Branches = len(cats)
	m.refreshPanels(true)
}

func (m *AppModel) setNotice(kind int, text string) {
	m.StatusBar.NoticeKind = kind
	m.StatusBar.Notice = text
}

func (m *AppModel) moveSelection(delta int) {
	n := len(m.Points)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+delta)%n + n) % n
	m.refreshPanels(true)
}

// SelectedPoint returns the selected layout point, if any.
func (m AppModel) SelectedPoint() (layout.Point, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Points) {
		return layout.Point{}, false
	}
	return m.Points[m.Selected], true
}

// questFor finds the quest text behind a layout point.
func (m AppModel) questFor(p layout.Point) string {
	for _, c := range m.Catalog {
		if c.Name == p.Category && p.Index < len(c.Skills) {
			return c.Skills[p.Index].Quest
		}
	}
	return ""
}

func (m *AppModel) refreshPanels(keepPromptOffset bool) {
	if pt, ok := m.SelectedPoint(); ok {
		body := FormatSkillDetail(SkillContext{Point: pt, Quest: m.questFor(pt)}, m.Detail.Width())
		m.Detail.SetContent(pt.Category+" Quest", body, false)
	} else {
		m.Detail.SetEmpty("No skills in catalog")
	}
	m.PromptPanel.SetContent("Prompt Chain", wrap(m.Prompt, m.PromptPanel.Width()), keepPromptOffset)
}

// sideBySide reports whether the detail panel sits to the right of the tree.
func (m AppModel) sideBySide() bool {
	return m.Width >= SideBySideWidth
}

// treeSize returns the canvas dimensions left over after the chrome.
func (m AppModel) treeSize() (width, height int) {
	// status bar (1) + legend (1) + footer with top border (2)
	height = m.Height - 4
	if m.ShowPrompt {
		// title + content + borders
		height -= PromptPanelHeight + 3
	}
	width = m.Width
	if m.sideBySide() {
		width -= DetailWidth
	} else {
		// detail title + body + borders
		height -= 8 + 3
	}
	return max(width, 0), max(height, 0)
}

func (m *AppModel) resize() {
	m.StatusBar.Width = m.Width
	if m.sideBySide() {
		_, h := m.treeSize()
		m.Detail.SetSize(DetailWidth-4, max(h-3, 1))
	} else {
		m.Detail.SetSize(max(m.Width-4, 1), 8)
	}
	m.PromptPanel.SetSize(max(m.Width-4, 1), PromptPanelHeight)
	m.refreshPanels(true)
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.Width < MinWidth || m.Height < MinHeight {
		return fmt.Sprintf("Terminal too small (%dx%d); need at least %dx%d.", m.Width, m.Height, MinWidth, MinHeight)
	}

	w, h := m.treeSize()
	tree := TreeView{Width: w, Height: h, Points: m.Points, Selected: m.Selected}.View()
	if len(m.Points) == 0 {
		tree = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, styleDetailDim.Render("empty catalog"))
	}

	var main string
	if m.sideBySide() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, tree, m.Detail.View())
	} else {
		main = lipgloss.JoinVertical(lipgloss.Left, tree, m.Detail.View())
	}

	sections := []string{m.StatusBar.View(), main, Legend(m.Catalog)}
	if m.ShowPrompt {
		sections = append(sections, m.PromptPanel.View())
	}
	footer := Footer{Width: m.Width, Bindings: TreeFooterBindings(m.Keys, m.ShowPrompt)}
	sections = append(sections, footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
