package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/config"
	"github.com/papapumpkin/skillarc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the skill tree and prompt in an interactive terminal UI",
	Long: `Opens the radial skill tree in the terminal. Use ←/→ to walk the nodes,
c to copy the prompt chain, p to toggle the prompt panel and q to quit.

When --catalog (or catalog_path) names a file, edits to it are picked up live
unless --no-watch is given.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Bool("no-watch", false, "do not reload the catalog file when it changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		viper.Set("watch", false)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cats, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	events, err := newEmitter(cfg, "tui")
	if err != nil {
		return err
	}
	defer events.Close()

	return tui.Run(tui.Options{
		Catalog:     cats,
		CatalogPath: cfg.CatalogPath,
		Watch:       cfg.Watch,
		Params:      cfg.LayoutParams(),
		Window:      cfg.Copy.ConfirmWindow,
		Logger:      logger,
		Telemetry:   events,
	})
}
