package cli

import (
	"fmt"
	"strconv"

	"go-shop-sync/internal/engine"

	"github.com/spf13/cobra"
)

// NewBasketCommand creates the basket command and its subcommands.
func NewBasketCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basket",
		Short: "Show the basket as stored by the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBasket(rootOpts, cmd, nil)
		},
	}

	cmd.AddCommand(newBasketAddCommand(rootOpts))
	cmd.AddCommand(newBasketDecreaseCommand(rootOpts))
	cmd.AddCommand(newBasketRemoveCommand(rootOpts))
	cmd.AddCommand(newBasketSetCommand(rootOpts))

	return cmd
}

func newBasketAddCommand(rootOpts *RootOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBasket(rootOpts, cmd, func(s *session) (engine.Op, error) {
				p, ok := s.store().ProductById(args[0])
				if !ok {
					return "", unknownProduct(args[0])
				}
				s.engine.AddToBasket(p, quantity)
				return engine.OpAddToBasket, nil
			})
		},
	}

	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "units to add")
	return cmd
}

func newBasketDecreaseCommand(rootOpts *RootOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "decrease <product-id>",
		Short: "Lower the quantity of a product, removing it when nothing would remain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBasket(rootOpts, cmd, func(s *session) (engine.Op, error) {
				if !s.store().IsInBasket(args[0]) {
					return "", NewExitError(ExitCommandError, fmt.Sprintf("product %q is not in the basket", args[0]))
				}
				s.engine.DecreaseQuantity(args[0], quantity)
				return engine.OpDecreaseQuantity, nil
			})
		},
	}

	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "units to remove")
	return cmd
}

func newBasketRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBasket(rootOpts, cmd, func(s *session) (engine.Op, error) {
				s.engine.RemoveFromBasket(args[0])
				return engine.OpRemoveFromBasket, nil
			})
		},
	}
}

func newBasketSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set the quantity of a basket item locally, without telling the backend",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "quantity", err)
			}
			return runBasket(rootOpts, cmd, func(s *session) (engine.Op, error) {
				if !s.engine.SetQuantity(args[0], quantity) {
					return "", NewExitError(ExitCommandError, fmt.Sprintf("product %q is not in the basket", args[0]))
				}
				return "", nil
			})
		},
	}
}

// runBasket syncs, runs apply (when set) and prints the resulting basket.
func runBasket(opts *RootOptions, cmd *cobra.Command, apply func(s *session) (engine.Op, error)) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}

	var ops []engine.Op
	if apply != nil {
		op, err := apply(s)
		if err != nil {
			s.close()
			return err
		}
		if op != "" {
			ops = append(ops, op)
		}
		s.engine.Wait()
	}

	if err := s.close(ops...); err != nil {
		return err
	}
	return s.out.Success(newBasketView(s.store().Basket.Get()))
}

func unknownProduct(id string) error {
	return NewExitError(ExitCommandError, fmt.Sprintf("unknown product %q", id))
}
