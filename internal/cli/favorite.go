package cli

import (
	"go-shop-sync/internal/engine"

	"github.com/spf13/cobra"
)

// NewFavoriteCommand creates the favorite command.
func NewFavoriteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <product-id>",
		Short: "Toggle a product in the favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}

			p, ok := s.store().ProductById(args[0])
			if !ok {
				s.close()
				return unknownProduct(args[0])
			}

			s.engine.ToggleFavorite(p.Id)
			s.engine.Wait()
			if err := s.close(engine.OpToggleFavorite); err != nil {
				return err
			}

			return s.out.Success(favoriteView{Product: newProductRow(p), Favorite: s.store().IsFavorite(p.Id)})
		},
	}
}

// NewFavoritesCommand creates the favorites command.
func NewFavoritesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List the favorite products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			if err := s.close(engine.OpLoadFavorites); err != nil {
				return err
			}

			return s.out.Success(productList{Title: "favorites", Products: newProductRows(s.store().FavoriteProducts())})
		},
	}
}
