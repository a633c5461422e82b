package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Execute(app *App) error {
	rootCmd := NewRootCmd(app)
	return rootCmd.Execute()
}

func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "borica",
		Short:             "BORICA e-Gateway client",
		Long:              `Builds and signs e-Gateway requests, renders payment forms and verifies gateway callbacks.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Version:           app.Version,
	}
	rootCmd.PersistentFlags().StringVar(&app.ConfigPath, "conf", "config.yml", "path to config file, empty to read the environment only")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display the version of borica",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "borica version %s\n", app.Version)
		},
	})

	rootCmd.AddCommand(NewSignCmd(app))
	rootCmd.AddCommand(NewVerifyCmd(app))
	rootCmd.AddCommand(NewServeCmd(app))
	rootCmd.AddCommand(NewNonceCmd())
	rootCmd.AddCommand(NewLogsCmd(app))

	return rootCmd
}
