package cli

import (
	"go-shop-sync/internal/engine"

	"github.com/spf13/cobra"
)

// NewClickCommand creates the click command.
func NewClickCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "click <product-id>",
		Short: "Record a product click and show products similar to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}

			if _, ok := s.store().ProductById(args[0]); !ok {
				s.close()
				return unknownProduct(args[0])
			}

			s.engine.TrackProductClick(args[0])
			s.engine.Wait()
			if err := s.close(engine.OpRefreshProductDetail); err != nil {
				return err
			}

			return s.out.Success(productList{Title: "similar to this product", Products: newProductRows(s.store().ProductDetail.Get())})
		},
	}
}

// NewRecommendCommand creates the recommend command.
func NewRecommendCommand(rootOpts *RootOptions) *cobra.Command {
	var productId string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show the for-you and basket recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}

			if productId != "" {
				if _, ok := s.store().ProductById(productId); !ok {
					s.close()
					return unknownProduct(productId)
				}
				s.engine.OpenProduct(productId)
			}
			s.engine.RefreshForYou()
			s.engine.Wait()

			// Failed slices are printed empty.
			if err := s.close(); err != nil {
				return err
			}

			view := recommendationsView{
				ForYou:        newProductRows(s.store().ForYou.Get()),
				BasketSimilar: newProductRows(s.store().BasketSimilar.Get()),
			}
			if productId != "" {
				view.ProductDetail = newProductRows(s.store().ProductDetail.Get())
			}
			return s.out.Success(view)
		},
	}

	cmd.Flags().StringVarP(&productId, "product", "p", "", "also show products similar to this one")
	return cmd
}
