package cli

import (
	"fmt"
	"strings"

	"go-shop-sync/internal/engine"

	"github.com/spf13/cobra"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [query]",
		Short: "List the catalog, optionally filtered by a category name or free text",
		Long: `List the catalog grouped by category.

Without a query every category shows a short preview. A query equal to a
category name lists that whole category; any other query matches product
and category names case-insensitively.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(rootOpts, cmd, func(e *engine.Engine) error {
				e.Search(strings.Join(args, " "))
				return nil
			})
		},
	}
}

// NewCategoryCommand creates the category command.
func NewCategoryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "category <category-id>",
		Short: "List every product of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(rootOpts, cmd, func(e *engine.Engine) error {
				if _, ok := e.Store().CategoryById(args[0]); !ok {
					return NewExitError(ExitCommandError, fmt.Sprintf("unknown category %q", args[0]))
				}
				e.FilterByCategoryTab(args[0])
				return nil
			})
		},
	}
}

func runBrowse(opts *RootOptions, cmd *cobra.Command, apply func(e *engine.Engine) error) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}

	if err := apply(s.engine); err != nil {
		s.close()
		return err
	}
	if err := s.close(); err != nil {
		return err
	}

	return s.out.Success(newListing(s.store().Filter.Get(), s.engine.View()))
}
