package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"

	"plume/tui"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse resolver tokens in the terminal",
		Long:  "Launch an interactive inspector showing the utility classes the variant resolver emits for each variant, color, and field placement.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return serr.Wrap(err, "token inspector failed")
			}
			return nil
		},
	}

	return cmd
}
