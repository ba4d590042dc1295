package cli

import "github.com/spf13/cobra"

// NewPurchaseCommand creates the purchase command.
func NewPurchaseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purchase",
		Short: "Buy everything in the basket",
		Long: `Record the basket as a purchase, report the bought products to the
backend and clear the remote basket.

When the backend fails to clear the basket the purchase is still recorded
and the remaining basket is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}

			if !s.engine.CompletePurchase() {
				s.close()
				return NewExitError(ExitFailure, "basket is empty")
			}
			s.engine.Wait()

			if err := s.close(); err != nil {
				return err
			}

			history := s.store().History.Get()
			return s.out.Success(newPurchaseView(history[0], s.store().Basket.Get()))
		},
	}
}
