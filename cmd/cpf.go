package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/cadastro/internal/cpf"
)

// newCPFCmd creates the cpf command group.
func newCPFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpf",
		Short: "Check and generate CPF numbers",
		Long: `Work with CPF numbers directly.

Examples:
  cadastro cpf check 529.982.247-25 12345678900
  cadastro cpf generate -n 5`,
	}

	cmd.AddCommand(newCPFCheckCmd())
	cmd.AddCommand(newCPFGenerateCmd())

	return cmd
}

func newCPFCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <cpf>...",
		Short: "Validate CPF numbers and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCPFCheck,
	}
}

func runCPFCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := false

	for _, arg := range args {
		canonical, err := cpf.Validate(arg)
		switch {
		case errors.Is(err, cpf.ErrBlank):
			failed = true
			fmt.Fprintf(out, "%q\tblank\n", arg)
		case err != nil:
			failed = true
			fmt.Fprintf(out, "%s\tinvalid\n", arg)
		default:
			fmt.Fprintf(out, "%s\tvalid\n", canonical)
		}
	}

	if failed {
		return errValidationFailed
	}
	return nil
}

func newCPFGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random valid CPF numbers for testing",
		Args:  cobra.NoArgs,
		RunE:  runCPFGenerate,
	}

	cmd.Flags().IntP("count", "n", 1, "How many numbers to generate")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible output (default: random)")

	return cmd
}

func runCPFGenerate(cmd *cobra.Command, _ []string) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return fmt.Errorf("getting count flag: %w", err)
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return fmt.Errorf("getting seed flag: %w", err)
	}
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // Not security sensitive.
	}

	r := rand.New(rand.NewPCG(seed, seed>>1)) //nolint:gosec // Test fixtures only.
	for i := 0; i < count; i++ {
		fmt.Fprintln(cmd.OutOrStdout(), cpf.Generate(r))
	}
	return nil
}
