package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/clipboard"
	"github.com/papapumpkin/skillarc/internal/config"
	"github.com/papapumpkin/skillarc/internal/copyflow"
	"github.com/papapumpkin/skillarc/internal/prompt"
	"github.com/papapumpkin/skillarc/internal/ui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the composed prompt chain",
	Long: `Composes the design prompt from the catalog and prints it to stdout.
With --copy the prompt is also placed on the system clipboard; a clipboard
failure is reported but does not fail the command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPrompt(cmd, clipboard.System{})
	},
}

func init() {
	promptCmd.Flags().BoolP("copy", "c", false, "copy the prompt to the clipboard")
	rootCmd.AddCommand(promptCmd)
}

// runPrompt prints the composed prompt and, with --copy, writes it to clip.
func runPrompt(cmd *cobra.Command, clip clipboard.Writer) error {
	doCopy, _ := cmd.Flags().GetBool("copy")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cats, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return err
	}
	text := prompt.Compose(cats)
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if !doCopy {
		return nil
	}

	logger, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	events, err := newEmitter(cfg, "prompt")
	if err != nil {
		return err
	}
	defer events.Close()

	session := copyflow.New(clip, copyflow.Options{
		Window:    cfg.Copy.ConfirmWindow,
		Logger:    logger,
		Telemetry: events,
	})
	defer session.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ok := session.Copy(ctx, text)
	ui.New().CopyResult(ok, len([]rune(text)), session.Window())
	return nil
}
