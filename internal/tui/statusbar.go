package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Notice severities shown on the right of the status bar.
const (
	NoticeInfo = iota
	NoticeWarn
	NoticeError
)

// StatusBar renders the persistent top bar: title, catalog size and the
// copy confirmation or latest notice.
type StatusBar struct {
	Title      string
	Skills     int
	Branches   int
	Copied     bool
	Notice     string
	NoticeKind int
	Width      int
}

// View renders the status bar as a single line. The copy confirmation takes
// precedence over any notice; on narrow terminals the counts are dropped
// before the confirmation.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	// The outer styleStatusBar applies Padding(0,1), consuming 2 columns.
	const barPadding = 2
	innerWidth := s.Width - barPadding
	if innerWidth < 0 {
		innerWidth = 0
	}

	barBg := lipgloss.NewStyle().Background(colorSurface)
	left := styleStatusLabel.Render("◆ " + s.title())
	if !compact {
		left += barBg.Render("  ") + styleStatusValue.Render(fmt.Sprintf("%d skills · %d branches", s.Skills, s.Branches))
	}

	right := s.renderRight()
	rightWidth := lipgloss.Width(right)
	leftWidth := lipgloss.Width(left)

	// Minimum padding between left and right.
	const minGap = 1
	if leftWidth+rightWidth+minGap > innerWidth {
		left = styleStatusLabel.Render(TruncateWithEllipsis("◆ "+s.title(), innerWidth-rightWidth-minGap))
		leftWidth = lipgloss.Width(left)
	}

	gap := innerWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}
	line := left + barBg.Render(strings.Repeat(" ", gap)) + right
	return styleStatusBar.Width(s.Width).Render(line)
}

func (s StatusBar) title() string {
	if s.Title == "" {
		return "NEON SKILL ARC"
	}
	return s.Title
}

// renderRight returns the confirmation badge or the current notice.
func (s StatusBar) renderRight() string {
	if s.Copied {
		return styleStatusCopied.Render("✓ Prompt copied")
	}
	if s.Notice == "" {
		return ""
	}
	switch s.NoticeKind {
	case NoticeError:
		return styleStatusError.Render("✗ " + s.Notice)
	case NoticeWarn:
		return styleStatusWarn.Render("⚠ " + s.Notice)
	default:
		return styleStatusValue.Render(s.Notice)
	}
}
