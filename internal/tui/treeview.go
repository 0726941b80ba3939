package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/layout"
)

// cellKind orders what may overwrite what on the canvas.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellConnector
	cellNode
	cellCore
)

type cell struct {
	r     rune
	kind  cellKind
	color string
	sel   bool
}

// TreeView plots layout points on a character canvas centered on the core.
// Terminal cells are roughly twice as tall as they are wide, so the vertical
// axis is compressed by half to keep the arcs round.
type TreeView struct {
	Width    int
	Height   int
	Points   []layout.Point
	Selected int // index into Points; out of range means no selection
}

// scale returns the factor mapping layout units to columns.
func (t TreeView) scale() float64 {
	ext := layout.Extent(t.Points)
	if ext <= 0 {
		return 0
	}
	sx := float64(t.Width/2-1) / ext
	sy := 2 * float64(t.Height/2-1) / ext
	return math.Max(0, math.Min(sx, sy))
}

// center returns the canvas cell of the core.
func (t TreeView) center() (col, row int) {
	return t.Width / 2, t.Height / 2
}

// Project returns the canvas cell of a layout point and whether it lies on
// the canvas.
func (t TreeView) Project(p layout.Point) (col, row int, ok bool) {
	s := t.scale()
	cx, cy := t.center()
	col = cx + int(math.Round(p.X*s))
	row = cy + int(math.Round(p.Y*s/2))
	ok = col >= 0 && col < t.Width && row >= 0 && row < t.Height
	return col, row, ok
}

// grid rasterizes the tree. Connectors run from the core to every node,
// nodes overwrite connectors, and the core label overwrites everything.
func (t TreeView) grid() [][]cell {
	if t.Width <= 0 || t.Height <= 0 {
		return nil
	}
	g := make([][]cell, t.Height)
	for i := range g {
		g[i] = make([]cell, t.Width)
		for j := range g[i] {
			g[i][j] = cell{r: ' '}
		}
	}
	put := func(col, row int, c cell) {
		if row < 0 || row >= t.Height || col < 0 || col >= t.Width {
			return
		}
		if g[row][col].kind > c.kind {
			return
		}
		g[row][col] = c
	}

	cx, cy := t.center()
	for _, p := range t.Points {
		col, row, _ := t.Project(p)
		dc, dr := col-cx, row-cy
		n := max(abs(dc), abs(dr))
		for k := 1; k < n; k++ {
			c := cx + int(math.Round(float64(dc*k)/float64(n)))
			r := cy + int(math.Round(float64(dr*k)/float64(n)))
			put(c, r, cell{r: glyphConnector, kind: cellConnector, color: p.Color})
		}
	}
	for i, p := range t.Points {
		col, row, _ := t.Project(p)
		glyph := glyphNode
		if i == t.Selected {
			glyph = glyphSelected
		}
		put(col, row, cell{r: glyph, kind: cellNode, color: p.Color, sel: i == t.Selected})
	}

	label := []rune(coreLabel)
	if len(label) > t.Width {
		label = label[:t.Width]
	}
	start := cx - len(label)/2
	for i, r := range label {
		put(start+i, cy, cell{r: r, kind: cellCore})
	}
	return g
}

// View renders the canvas, one line per row, grouping runs of equally
// styled cells into a single styled span.
func (t TreeView) View() string {
	g := t.grid()
	lines := make([]string, len(g))
	for i, row := range g {
		var b strings.Builder
		for j := 0; j < len(row); {
			k := j
			for k < len(row) && sameStyle(row[j], row[k]) {
				k++
			}
			var run strings.Builder
			for _, c := range row[j:k] {
				run.WriteRune(c.r)
			}
			b.WriteString(cellStyle(row[j]).Render(run.String()))
			j = k
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b cell) bool {
	return a.kind == b.kind && a.color == b.color && a.sel == b.sel
}

func cellStyle(c cell) lipgloss.Style {
	switch c.kind {
	case cellCore:
		return styleCore
	case cellNode:
		st := colorStyle(c.color).Bold(true)
		if c.sel {
			st = st.Underline(true)
		}
		return st
	case cellConnector:
		return colorStyle(c.color).Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// Legend renders one colored swatch per category.
func Legend(cats []catalog.Category) string {
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		parts = append(parts, colorStyle(c.Color).Render("■")+" "+styleLegend.Render(c.Name))
	}
	return strings.Join(parts, "  ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
