package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/clipboard"
	"github.com/papapumpkin/skillarc/internal/copyflow"
	"github.com/papapumpkin/skillarc/internal/layout"
	"github.com/papapumpkin/skillarc/internal/prompt"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// update is a typed wrapper around AppModel.Update.
func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return am, cmd
}

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m := NewAppModel(catalog.Default(), layout.DefaultParams(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestNewAppModel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	if got := len(m.Points); got != 12 {
		t.Errorf("len(Points) = %d, want 12", got)
	}
	if m.Prompt != prompt.Compose(catalog.Default()) {
		t.Error("Prompt does not match prompt.Compose of the catalog")
	}
	if m.StatusBar.Skills != 12 || m.StatusBar.Branches != 4 {
		t.Errorf("status bar counts = %d/%d, want 12/4", m.StatusBar.Skills, m.StatusBar.Branches)
	}
	if m.StatusBar.Copied {
		t.Error("model starts with the copy confirmation showing")
	}
}

func TestSelectionWraps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"next", []tea.KeyMsg{{Type: tea.KeyRight}}, 1},
		{"next twice", []tea.KeyMsg{{Type: tea.KeyRight}, runeKey('l')}, 2},
		{"prev wraps to last", []tea.KeyMsg{{Type: tea.KeyLeft}}, 11},
		{"next then prev", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyLeft}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t)
			for _, k := range tt.keys {
				m, _ = update(t, m, k)
			}
			if m.Selected != tt.want {
				t.Errorf("Selected = %d, want %d", m.Selected, tt.want)
			}
		})
	}
}

func TestDetailShowsSelectedQuest(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	view := m.Detail.View()
	if !strings.Contains(view, "Passing Quest") {
		t.Errorf("detail title missing, got:\n%s", view)
	}
	if !strings.Contains(view, "Ground Laser") {
		t.Errorf("detail missing skill name, got:\n%s", view)
	}
	if !strings.Contains(view, "Thread 120 ground ball") {
		t.Errorf("detail missing quest text, got:\n%s", view)
	}
}

func TestTogglePrompt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	if !m.ShowPrompt {
		t.Fatal("prompt panel hidden by default")
	}
	if !strings.Contains(m.View(), "Prompt Chain") {
		t.Error("view missing Prompt Chain panel")
	}
	m, _ = update(t, m, runeKey('p'))
	if m.ShowPrompt {
		t.Fatal("p did not hide the prompt panel")
	}
	if strings.Contains(m.View(), "Prompt Chain") {
		t.Error("view still shows Prompt Chain panel")
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestCopyKeyWritesPrompt(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		written []string
		changes []bool
	)
	clip := clipboard.Func(func(_ context.Context, text string) error {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, text)
		return nil
	})
	session := copyflow.New(clip, copyflow.Options{
		Window:   time.Hour,
		OnChange: func(c bool) { changes = append(changes, c) },
	})
	defer session.Close()

	m := NewAppModel(catalog.Default(), layout.DefaultParams(), session)
	m, cmd := update(t, m, runeKey('c'))
	if cmd == nil {
		t.Fatal("c returned no command")
	}
	if m.StatusBar.Copied {
		t.Error("confirmation shown before the write finished")
	}

	msg := cmd()
	res, ok := msg.(MsgCopyResult)
	if !ok || !res.OK {
		t.Fatalf("copy command returned %#v, want MsgCopyResult{OK: true}", msg)
	}
	if len(written) != 1 || written[0] != m.Prompt {
		t.Fatalf("clipboard received %d writes; want the composed prompt once", len(written))
	}
	if len(changes) != 1 || !changes[0] {
		t.Errorf("OnChange calls = %v, want [true]", changes)
	}

	m, _ = update(t, m, res)
	m, _ = update(t, m, MsgCopyState{Copied: true})
	if !strings.Contains(m.View(), "Prompt copied") {
		t.Error("view missing the copy confirmation")
	}
	m, _ = update(t, m, MsgCopyState{Copied: false})
	if strings.Contains(m.View(), "Prompt copied") {
		t.Error("confirmation still showing after reset")
	}
}

func TestCopyKeyWithoutSession(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	if _, cmd := update(t, m, runeKey('c')); cmd != nil {
		t.Error("copy without a session returned a command")
	}
}

func TestCopyFailureShowsNotice(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, MsgCopyResult{OK: false})
	if m.StatusBar.Copied {
		t.Error("failed copy raised the confirmation")
	}
	if !strings.Contains(m.StatusBar.View(), "clipboard unavailable") {
		t.Errorf("status bar missing failure notice: %s", m.StatusBar.View())
	}
}

func TestCatalogReload(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for range 11 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}

	small := []catalog.Category{{
		Name: "Solo", Angle: 45, Spread: 30, Color: "#30F6FF",
		Skills: []catalog.Skill{{Name: "Lone Star", Hex: "#30F6FF", Quest: "Juggle 100 times."}},
	}}
	m, _ = update(t, m, MsgCatalogReloaded{Path: "c.toml", Catalog: small})

	if len(m.Points) != 1 {
		t.Fatalf("len(Points) = %d, want 1", len(m.Points))
	}
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want clamped to 0", m.Selected)
	}
	if m.Prompt != prompt.Compose(small) {
		t.Error("prompt not recomposed for the new catalog")
	}
	if !strings.Contains(m.Detail.View(), "Lone Star") {
		t.Error("detail panel not refreshed")
	}
}

func TestCatalogInvalidKeepsPrevious(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid", fmt.Errorf("%w: bad color", catalog.ErrInvalidCatalog), "catalog invalid"},
		{"missing", fmt.Errorf("load: %w", catalog.ErrNoCatalog), "catalog file missing"},
		{"other", errors.New("parse error"), "catalog invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t)
			before := m.Prompt
			m, _ = update(t, m, MsgCatalogInvalid{Path: "c.toml", Err: tt.err})
			if m.Prompt != before || len(m.Points) != 12 {
				t.Error("invalid catalog replaced the previous one")
			}
			if !strings.Contains(m.StatusBar.Notice, tt.want) {
				t.Errorf("Notice = %q, want it to contain %q", m.StatusBar.Notice, tt.want)
			}
		})
	}
}

func TestEmptyCatalog(t *testing.T) {
	t.Parallel()

	m := NewAppModel(nil, layout.DefaultParams(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
	if _, ok := m.SelectedPoint(); ok {
		t.Error("SelectedPoint reported a point for an empty catalog")
	}
	view := m.View()
	if !strings.Contains(view, "empty catalog") {
		t.Errorf("view missing empty hint:\n%s", view)
	}
}

func TestViewTooSmall(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("tiny terminal did not get the size hint")
	}
}

func TestViewLayouts(t *testing.T) {
	t.Parallel()

	for _, size := range []tea.WindowSizeMsg{{Width: 120, Height: 40}, {Width: 80, Height: 40}} {
		t.Run(fmt.Sprintf("%dx%d", size.Width, size.Height), func(t *testing.T) {
			t.Parallel()
			m := NewAppModel(catalog.Default(), layout.DefaultParams(), nil)
			m, _ = update(t, m, size)
			view := m.View()
			for _, want := range []string{coreLabel, "Passing Quest", "NEON SKILL ARC", "Freestyle"} {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}
