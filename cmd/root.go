// Package cmd provides the CLI commands for cadastro.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/cadastro/internal/prompt"
	"github.com/guilhermegouw/cadastro/internal/tui"
)

// errValidationFailed signals a non-zero exit after the validation errors
// have already been printed.
var errValidationFailed = errors.New("validation failed")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cadastro",
		Short: "Collect and validate personal data",
		Long: `cadastro asks for a name, an email, a CPF and a birth date,
validates each one and prints either the formatted data or every
validation error found.

Birth dates are accepted as dd/MM/yyyy, ddMMyyyy or ddMMyy.`,
		RunE:          runInteractive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging to the data directory")
	cmd.PersistentFlags().String("config", "", "Path to a config file (default: XDG config + project cadastro.json)")
	cmd.PersistentFlags().Bool("relaxed-names", false, "Accept names containing double spaces")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format: text or json")
	cmd.Flags().Bool("tui", false, "Use the interactive form instead of line prompts")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newCPFCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	useTUI, err := cmd.Flags().GetBool("tui")
	if err != nil {
		return fmt.Errorf("getting tui flag: %w", err)
	}

	v := a.validator()

	if useTUI {
		user, errs, err := tui.Run(v)
		if errors.Is(err, tui.ErrCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
		a.logResult(user, errs)
		return a.print(cmd.OutOrStdout(), user, errs)
	}

	input, err := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout()).Collect()
	if err != nil {
		return fmt.Errorf("collecting input: %w", err)
	}

	user, errs := v.Validate(input)
	a.logResult(user, errs)
	return a.print(cmd.OutOrStdout(), user, errs)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return execute(newRootCmd())
}

func execute(root *cobra.Command) int {
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errValidationFailed):
		return 1
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}
