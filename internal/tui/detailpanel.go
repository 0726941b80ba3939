package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/skillarc/internal/layout"
)

// DetailPanel wraps a viewport for scrollable content display.
type DetailPanel struct {
	viewport   viewport.Model
	title      string
	totalLines int // total lines of content (before viewport clipping)
	emptyHint  string
}

// NewDetailPanel creates a detail panel with the given dimensions.
func NewDetailPanel(width, height int) DetailPanel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return DetailPanel{viewport: vp}
}

// SetSize updates the viewport dimensions.
func (d *DetailPanel) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// Width returns the content width of the viewport.
func (d DetailPanel) Width() int {
	return d.viewport.Width
}

// SetContent updates the displayed text and title, keeping the scroll
// position when keepOffset is set and the content is still long enough.
func (d *DetailPanel) SetContent(title, content string, keepOffset bool) {
	d.title = title
	d.emptyHint = ""
	d.totalLines = strings.Count(content, "\n") + 1
	offset := d.viewport.YOffset
	d.viewport.SetContent(content)
	if keepOffset {
		d.viewport.SetYOffset(offset)
	} else {
		d.viewport.GotoTop()
	}
}

// SetEmpty sets the detail panel to show an empty-state hint.
func (d *DetailPanel) SetEmpty(hint string) {
	d.title = ""
	d.emptyHint = hint
	d.totalLines = 0
	d.viewport.SetContent("")
	d.viewport.GotoTop()
}

// Update handles viewport scroll messages.
func (d *DetailPanel) Update(msg tea.Msg) {
	d.viewport, _ = d.viewport.Update(msg)
}

// ScrollUp moves the viewport up one line.
func (d *DetailPanel) ScrollUp() {
	d.viewport.SetYOffset(d.viewport.YOffset - 1)
}

// ScrollDown moves the viewport down one line.
func (d *DetailPanel) ScrollDown() {
	d.viewport.SetYOffset(d.viewport.YOffset + 1)
}

// View renders the detail panel with a rounded border and scroll indicators.
func (d DetailPanel) View() string {
	if d.emptyHint != "" {
		content := styleDetailDim.Render(d.emptyHint)
		return styleDetailBorder.Render(content)
	}

	var b strings.Builder

	if d.title != "" {
		b.WriteString(styleDetailTitle.Render(d.title))
		b.WriteString("\n")
	}

	// Scroll-up indicator.
	if upMore := d.linesAbove(); upMore > 0 {
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↑ %d more", upMore)))
		b.WriteString("\n")
	}

	b.WriteString(d.viewport.View())

	// Scroll-down indicator.
	if downMore := d.linesBelow(); downMore > 0 {
		b.WriteString("\n")
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↓ %d more", downMore)))
	}

	return styleDetailBorder.Render(b.String())
}

// linesAbove returns the number of content lines above the viewport.
func (d DetailPanel) linesAbove() int {
	return d.viewport.YOffset
}

// linesBelow returns the number of content lines below the viewport.
func (d DetailPanel) linesBelow() int {
	below := d.totalLines - d.viewport.YOffset - d.viewport.Height
	if below < 0 {
		return 0
	}
	return below
}

// --- Formatting helpers ---

// SkillContext holds what the detail panel shows about the selected node.
type SkillContext struct {
	Point layout.Point
	Quest string
}

// FormatSkillDetail renders the body of the detail panel for a skill,
// wrapping the quest text to width.
func FormatSkillDetail(ctx SkillContext, width int) string {
	label := styleDetailHeaderLabel.Render
	value := styleDetailHeaderValue.Render
	pt := ctx.Point

	var b strings.Builder
	b.WriteString(colorStyle(pt.Color).Bold(true).Render(pt.Skill))
	b.WriteString("  ")
	b.WriteString(styleDetailDim.Render(pt.Color))
	b.WriteString("\n")
	b.WriteString(styleDetailSep.Render(strings.Repeat("─", max(1, min(width, 40)))))
	b.WriteString("\n")
	b.WriteString(wrap(ctx.Quest, width))
	b.WriteString("\n\n")
	b.WriteString(label("angle: "))
	b.WriteString(value(fmt.Sprintf("%.1f°", pt.Angle)))
	b.WriteString("  ")
	b.WriteString(label("radius: "))
	b.WriteString(value(fmt.Sprintf("%.0f", pt.Radius)))
	b.WriteString("\n")
	b.WriteString(label("rotation: "))
	b.WriteString(value(fmt.Sprintf("%.1f°", pt.Rotation)))
	b.WriteString("  ")
	b.WriteString(label("ring: "))
	b.WriteString(value(fmt.Sprintf("%d", pt.Index+1)))
	return b.String()
}

// wrap breaks text into lines of at most width runes on word boundaries.
// Words longer than width are left on a line of their own.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
