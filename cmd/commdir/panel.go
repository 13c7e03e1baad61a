package main

import (
	"github.com/spf13/cobra"

	"github.com/maloquacious/commdir/internal/panel"
)

// panelCmd runs the in-memory directory form in the terminal. It does not
// open the database.
func (a *app) panelCmd() *cobra.Command {
	var empty bool
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Interactive in-memory directory form (not persisted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := panel.InitialPeople
			if empty {
				initial = nil
			}
			out := cmd.OutOrStdout()
			d := panel.New(panel.WriterNotifier(out), initial)
			return panel.Run(cmd.Context(), d, cmd.InOrStdin(), out)
		},
	}
	cmd.Flags().BoolVar(&empty, "empty", false, "start with an empty directory")
	return cmd
}
