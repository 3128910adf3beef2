package commands

import "github.com/spf13/cobra"

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Prompt for dome parameters until the exit word is typed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Shell().Run(cmd.Context())
		},
	}
}
