package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/config"
	"github.com/papapumpkin/skillarc/internal/layout"
	"github.com/papapumpkin/skillarc/internal/ui"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the computed position of every skill node",
	Args:  cobra.NoArgs,
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().Bool("json", false, "emit JSON instead of a table")
	rootCmd.AddCommand(layoutCmd)
}

// pointJSON is the wire shape of a layout point.
type pointJSON struct {
	Category string  `json:"category"`
	Skill    string  `json:"skill"`
	Color    string  `json:"color"`
	Index    int     `json:"index"`
	Angle    float64 `json:"angle"`
	Radius   float64 `json:"radius"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

func runLayout(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cats, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return err
	}
	points := layout.Compute(cats, cfg.LayoutParams())

	out := cmd.OutOrStdout()
	if !asJSON {
		ui.New().Banner()
		color := out == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())
		ui.LayoutTable(out, points, color)
		return nil
	}

	rows := make([]pointJSON, len(points))
	for i, p := range points {
		rows[i] = pointJSON(p)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return nil
}
