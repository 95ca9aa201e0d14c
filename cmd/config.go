package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/cadastro/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
		Long: `Show or change cadastro configuration.

Settings are read from the global config file, then from the nearest
cadastro.json or .cadastro.json in the current directory or its parents,
then from CADASTRO_* environment variables.

Examples:
  cadastro config init
  cadastro config show
  cadastro config set validation.relaxed_names true
  cadastro config set validation.min_age 21
  cadastro config keys`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigKeysCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("getting force flag: %w", err)
	}

	path := configPath(cmd)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := config.Default()
	if err != nil {
		return err
	}

	if explicitConfig(cmd) {
		err = config.SaveToFile(cfg, path)
	} else {
		err = config.Save(cfg)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the global config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configPath(cmd))
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a single configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, raw := args[0], args[1]

			value, err := config.ParseValue(key, raw)
			if err != nil {
				return err
			}

			path := configPath(cmd)
			if explicitConfig(cmd) {
				err = config.SetConfigField(path, key, value)
			} else {
				err = config.SetField(key, value)
			}
			if err != nil {
				return fmt.Errorf("updating %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v in %s\n", key, value, path)
			return nil
		},
	}
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List settable configuration keys",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range config.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}

// configPath returns the --config path, or the global config path.
func configPath(cmd *cobra.Command) string {
	if explicitConfig(cmd) {
		path, _ := cmd.Flags().GetString("config")
		return path
	}
	return config.GlobalConfigPath()
}

func explicitConfig(cmd *cobra.Command) bool {
	path, err := cmd.Flags().GetString("config")
	return err == nil && path != ""
}
