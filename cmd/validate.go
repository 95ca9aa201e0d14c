package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/cadastro/internal/models"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate user data given as flags",
		Long: `Validate the four fields without prompting.

Exits with status 1 when any field is invalid, after printing the errors.

Examples:
  cadastro validate --name "Nathan Almeida" --email nathan@email.com \
    --cpf 529.982.247-25 --birth-date 30/09/2000
  cadastro validate -o json --cpf 123.456.789-00`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("cpf", "", "CPF, with or without punctuation")
	cmd.Flags().String("birth-date", "", "Birth date (dd/MM/yyyy, ddMMyyyy or ddMMyy)")

	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	input, err := inputFromFlags(cmd)
	if err != nil {
		return err
	}

	user, errs := a.validator().Validate(input)
	a.logResult(user, errs)
	if err := a.print(cmd.OutOrStdout(), user, errs); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}

	if errs != nil {
		return errValidationFailed
	}
	return nil
}

func inputFromFlags(cmd *cobra.Command) (models.Input, error) {
	var input models.Input
	targets := map[string]*string{
		"name":       &input.Name,
		"email":      &input.Email,
		"cpf":        &input.CPF,
		"birth-date": &input.BirthDate,
	}

	for flag, dst := range targets {
		v, err := cmd.Flags().GetString(flag)
		if err != nil {
			return input, fmt.Errorf("getting %s flag: %w", flag, err)
		}
		*dst = v
	}
	return input, nil
}
