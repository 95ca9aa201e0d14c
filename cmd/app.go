package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/guilhermegouw/cadastro/internal/config"
	"github.com/guilhermegouw/cadastro/internal/cpf"
	"github.com/guilhermegouw/cadastro/internal/debug"
	"github.com/guilhermegouw/cadastro/internal/models"
	"github.com/guilhermegouw/cadastro/internal/report"
	"github.com/guilhermegouw/cadastro/internal/tui/styles"
)

// clock is the time source for age checks. Tests replace it.
var clock = time.Now

// app holds the per-invocation state shared by commands.
type app struct {
	cfg          *config.Config
	debugEnabled bool
}

// loadApp loads configuration, applies flag overrides and enables debug
// logging when requested.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("relaxed-names") {
		relaxed, err := flags.GetBool("relaxed-names")
		if err != nil {
			return nil, fmt.Errorf("getting relaxed-names flag: %w", err)
		}
		cfg.Validation.RelaxedNames = relaxed
	}
	if flags.Changed("output") {
		output, err := flags.GetString("output")
		if err != nil {
			return nil, fmt.Errorf("getting output flag: %w", err)
		}
		cfg.Options.Output = output
	}
	if flags.Changed("debug") {
		debugMode, err := flags.GetBool("debug")
		if err != nil {
			return nil, fmt.Errorf("getting debug flag: %w", err)
		}
		cfg.Options.Debug = debugMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if cfg.Options.Debug {
		logPath := cfg.DebugLogPath()
		if err := debug.Enable(logPath); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to enable debug logging: %v\n", err)
		} else {
			a.debugEnabled = true
			fmt.Fprintf(cmd.ErrOrStderr(), "Debug: %s\n", logPath)
		}
	}

	return a, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("getting config flag: %w", err)
	}

	if path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (a *app) close() {
	if a.debugEnabled {
		debug.Disable()
	}
}

func (a *app) validator() *models.Validator {
	return a.cfg.NewValidator(clock)
}

// print writes the result in the configured format.
func (a *app) print(w io.Writer, user *models.User, errs models.ValidationErrors) error {
	if a.cfg.Options.Output == config.OutputJSON {
		return report.JSON(w, user, errs)
	}

	var theme *styles.Theme
	if isTerminal(w) {
		theme = styles.CurrentTheme()
	}
	return report.Text(w, user, errs, theme)
}

func (a *app) logResult(user *models.User, errs models.ValidationErrors) {
	if errs != nil {
		debug.Event("validate", "Result", fmt.Sprintf("valid=false codes=%v", errs.Kinds()))
		return
	}
	debug.Event("validate", "Result", fmt.Sprintf("valid=true id=%s cpf=%s", user.ID, cpf.Mask(user.CPF)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of the terminal behind w, or 0
// when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
