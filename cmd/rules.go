package cmd

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/guilhermegouw/cadastro/internal/debug"
	"github.com/guilhermegouw/cadastro/internal/render"
)

const defaultRulesWidth = 80

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Describe the validation rules in effect",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}
}

func runRules(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	md := render.RulesMarkdown(render.RuleSet{
		StrictName: !a.cfg.Validation.RelaxedNames,
		MinAge:     a.cfg.Validation.MinAge,
		MaxAge:     a.cfg.Validation.MaxAge,
	})

	out := cmd.OutOrStdout()
	profile := termenv.Ascii
	width := defaultRulesWidth
	if isTerminal(out) {
		profile = termenv.EnvColorProfile()
		if w := terminalWidth(out); w > 0 {
			width = min(w, 100)
		}
	}

	// On failure Render returns the raw markdown, which is still readable.
	rendered, err := render.NewMarkdownRenderer(profile).Render(md, width)
	if err != nil {
		debug.Error("rules", err, "rendering markdown")
	}

	fmt.Fprint(out, rendered)
	return nil
}
