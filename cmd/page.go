package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/config"
	"github.com/papapumpkin/skillarc/internal/page"
	"github.com/papapumpkin/skillarc/internal/ui"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Export the skill tree as a static HTML page",
	Args:  cobra.NoArgs,
	RunE:  runPage,
}

func init() {
	pageCmd.Flags().StringP("output", "o", "", "write the page to this file instead of stdout")
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cats, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return err
	}
	data := page.NewData(cats, cfg.LayoutParams())

	if output == "" {
		return page.Render(cmd.OutOrStdout(), data)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := page.Render(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}
	ui.New().Info(fmt.Sprintf("wrote %s (%d nodes)", output, len(data.Nodes)))
	return nil
}
