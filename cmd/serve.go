package cmd

import (
	"borica/internal"

	"github.com/spf13/cobra"
)

func NewServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the form preview server",
		Long: `Serves signed payment forms at GET /form/:trtype for local integration work.
The server never posts to the gateway and does not accept callbacks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := app.Config()
			if err != nil {
				return err
			}
			checkout, _, err := app.Checkout("checkout")
			if err != nil {
				return err
			}
			logger, err := app.Logger("server")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			server := internal.NewServer(conf)
			server.SetLogger(logger)
			server.SetCheckoutService(checkout)

			if err = server.Start(); err != nil {
				logger.Error("server start", err)
				return err
			}
			return nil
		},
	}
}
