package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"

	"plume/ui"
)

type tokensFlags struct {
	variant string
	color   string
	asJSON  bool
}

func newTokensCmd() *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens <component>",
		Short: "Print the resolved style tokens for a component surface",
		Long: "Resolves the token list a component surface would receive and prints\n" +
			"one token per line, or a JSON object with --json. \"input\" resolves\n" +
			"field wrapper tokens, \"list\" resolves list container tokens, and any\n" +
			"other component name resolves the shared surface table.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.variant, "variant", string(ui.VariantDefault), "Variant to resolve")
	cmd.Flags().StringVar(&flags.color, "color", string(ui.ColorNatural), "Color to resolve, raw classes pass through")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Emit a JSON object instead of plain lines")

	return cmd
}

func runTokens(cmd *cobra.Command, component string, flags *tokensFlags) error {
	v := ui.Variant(flags.variant)
	c := ui.Color(flags.color)

	var tokens []string
	switch component {
	case "input":
		tokens = ui.ResolveField(c, ui.FloatingNone)
	case "list":
		tokens = ui.ResolveList(v, c, false)
	default:
		tokens = ui.Resolve(v, c)
	}

	if flags.asJSON {
		out, err := json.MarshalIndent(struct {
			Component string   `json:"component"`
			Variant   string   `json:"variant"`
			Color     string   `json:"color"`
			Tokens    []string `json:"tokens"`
		}{component, flags.variant, flags.color, tokens}, "", "  ")
		if err != nil {
			return serr.Wrap(err, "failed to encode tokens as json")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	for _, tok := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok)
	}
	return nil
}
