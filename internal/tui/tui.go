// Package tui provides the BubbleTea-based terminal host for the skill arc:
// the radial tree, the selected skill's quest, the composed prompt and the
// copy confirmation.
package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/clipboard"
	"github.com/papapumpkin/skillarc/internal/copyflow"
	"github.com/papapumpkin/skillarc/internal/layout"
	"github.com/papapumpkin/skillarc/internal/telemetry"
)

// Options configures a TUI session.
type Options struct {
	Catalog     []catalog.Category
	CatalogPath string // watched for changes when Watch is set
	Watch       bool
	Params      layout.Params
	Clipboard   clipboard.Writer // clipboard.System when nil
	Window      time.Duration    // copy confirmation window
	Logger      *zap.Logger
	Telemetry   *telemetry.Emitter
}

// Run creates and runs the TUI program, blocking until it exits.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	bridge := NewBridge(opts.Logger, opts.Telemetry)

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	session := copyflow.New(clip, copyflow.Options{
		Window:    opts.Window,
		Logger:    opts.Logger,
		Telemetry: opts.Telemetry,
		OnChange:  bridge.CopyChanged,
	})
	defer session.Close()

	model := NewAppModel(opts.Catalog, opts.Params, session)
	allOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(model, allOpts...)
	bridge.Attach(p)

	if opts.Watch && opts.CatalogPath != "" {
		w, err := catalog.NewWatcher(opts.CatalogPath)
		if err != nil {
			return fmt.Errorf("watching catalog: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watching catalog: %w", err)
		}
		bridge.Watch(w)
		defer func() {
			w.Stop()
			bridge.Wait()
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads TUI input from r.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}
