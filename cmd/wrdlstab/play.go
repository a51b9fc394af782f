// Play command: interactive board editor.
package main

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wrdlstab/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Edit a board interactively and list candidates as you go",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		s := console.NewSession(b.engine(), cfg.Length, cmd.OutOrStdout())
		return s.Run(cmd.Context(), cmd.InOrStdin())
	},
}
