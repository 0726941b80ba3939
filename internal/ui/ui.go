// Package ui prints the human-facing lines of the skillarc CLI to stderr.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/papapumpkin/skillarc/internal/ansi"
	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/layout"
)

// Printer writes styled status lines to stderr so stdout stays clean for
// prompt, layout and page output.
type Printer struct{}

// New returns a Printer.
func New() *Printer {
	return &Printer{}
}

// Banner prints the skillarc title box.
func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ╔═══════════════════════════════════╗"+ansi.Reset)
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset+ansi.Bold+"  NEON SKILL ARC  "+ansi.Dim+"XP Nexus console"+ansi.Reset+ansi.Bold+ansi.Cyan+" ║"+ansi.Reset)
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ╚═══════════════════════════════════╝"+ansi.Reset)
	fmt.Fprintln(os.Stderr)
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// CatalogValidateResult reports the outcome of validating a catalog.
func (p *Printer) CatalogValidateResult(source string, cats []catalog.Category, errs []catalog.ValidationError) {
	if len(errs) == 0 {
		fmt.Fprintf(os.Stderr, ansi.Green+ansi.Bold+"✓ catalog %q"+ansi.Reset+": %d categories, %d skill(s), no errors\n",
			source, len(cats), catalog.SkillCount(cats))
		return
	}
	fmt.Fprintf(os.Stderr, ansi.Red+ansi.Bold+"✗ catalog %q"+ansi.Reset+": %d error(s):\n", source, len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  "+ansi.Red+"• "+ansi.Reset+"%s\n", e.Error())
	}
}

// CopyResult reports whether the prompt reached the clipboard.
func (p *Printer) CopyResult(ok bool, chars int, window time.Duration) {
	if !ok {
		fmt.Fprintln(os.Stderr, ansi.Yellow+ansi.Bold+"⚠ clipboard unavailable"+ansi.Reset+", prompt not copied")
		return
	}
	fmt.Fprintf(os.Stderr, ansi.Green+ansi.Bold+"✓ Prompt copied"+ansi.Reset+ansi.Dim+" (%d chars, confirmation %s)"+ansi.Reset+"\n",
		chars, window)
}

// LayoutTable writes one row per layout point. When color is true each
// skill name is tinted with its category color.
func LayoutTable(w io.Writer, points []layout.Point, color bool) {
	fmt.Fprintf(w, "%-10s %-24s %9s %8s %9s %9s %9s\n", "CATEGORY", "SKILL", "ANGLE", "RADIUS", "X", "Y", "ROTATION")
	for _, pt := range points {
		name := fmt.Sprintf("%-24s", pt.Skill)
		if color {
			if c := ansi.Hex(pt.Color); c != "" {
				name = c + name + ansi.Reset
			}
		}
		fmt.Fprintf(w, "%-10s %s %9.2f %8.1f %9.2f %9.2f %9.2f\n",
			pt.Category, name, pt.Angle, pt.Radius, pt.X, pt.Y, pt.Rotation)
	}
}
