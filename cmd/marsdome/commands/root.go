package commands

import (
	"github.com/spf13/cobra"

	"marsdome/internal/app"
	"marsdome/internal/config"
)

var (
	configPath string
	logLevel   string
	appCtx     *app.App
)

// Execute runs the CLI against the process arguments and streams.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "marsdome",
		Short:        "Mars base dome area and weight calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				settings.Log.Level = logLevel
			}

			appCtx, err = app.NewWire(app.Config{
				Settings: settings,
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
				Err:      cmd.ErrOrStderr(),
			})
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Shell().Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./marsdome.yaml if present)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(shellCmd(), calcCmd(), materialsCmd())
	return root
}
