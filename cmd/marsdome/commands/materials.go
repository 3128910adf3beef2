package commands

import (
	"github.com/spf13/cobra"

	"marsdome/internal/render"
)

func materialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "Print the material density table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Materials(cmd.OutOrStdout(), appCtx.Dome.Materials())
		},
	}
}
