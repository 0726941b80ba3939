package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/config"
	"github.com/papapumpkin/skillarc/internal/ui"
)

// errValidationFailed is returned by catalog validate after the problems
// have been printed.
var errValidationFailed = errors.New("catalog validation failed")

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate skill catalogs",
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active catalog as TOML",
	Long: `Prints the active catalog (the built-in one unless --catalog is given)
as TOML. The output is a valid catalog file and a starting point for edits.`,
	Args: cobra.NoArgs,
	RunE: runCatalogDump,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogDumpCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogDump(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cats, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return err
	}
	data, err := catalog.Encode(cats)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runCatalogValidate(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := cfg.CatalogPath
	if len(args) == 1 {
		path = args[0]
	}

	printer := ui.New()
	printer.Banner()
	source := path
	cats := catalog.Default()
	if path == "" {
		source = "built-in"
	} else {
		cats, err = catalog.Load(path)
		if err != nil {
			printer.Error(err.Error())
			return fmt.Errorf("%w: %s", errValidationFailed, path)
		}
	}

	errs := catalog.Validate(cats)
	printer.CatalogValidateResult(source, cats, errs)
	if len(errs) > 0 {
		return errValidationFailed
	}
	return nil
}
