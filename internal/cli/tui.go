package cli

import (
	"github.com/spf13/cobra"

	"github.com/TerminTURK/AlbumCollectionManager/internal/tui"
)

// newTUICmd builds the interactive command. As a standalone root it
// registers the global flags itself.
func newTUICmd(flags *globalFlags, root bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tui",
		Short:        "Run the collection manager in an interactive terminal UI",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, settings, cleanup, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			return tui.Run(d, settings.HistorySize)
		},
	}

	if root {
		cmd.Use = "albumcat-tui"
		flags.register(cmd)
	}
	return cmd
}
