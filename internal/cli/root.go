package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	CatalogPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the shop CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "shop - basket, favorites and recommendations from the terminal",
		Long: `Drive a shopping session against the recommendation backend.

Every command loads the product catalog, synchronizes the basket and favorites
with the backend, runs one action and prints the resulting state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "catalog CSV file (defaults to SHOP_CATALOG_PATH)")

	cmd.AddCommand(NewBrowseCommand(opts))
	cmd.AddCommand(NewCategoryCommand(opts))
	cmd.AddCommand(NewBasketCommand(opts))
	cmd.AddCommand(NewFavoriteCommand(opts))
	cmd.AddCommand(NewFavoritesCommand(opts))
	cmd.AddCommand(NewClickCommand(opts))
	cmd.AddCommand(NewRecommendCommand(opts))
	cmd.AddCommand(NewPurchaseCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
