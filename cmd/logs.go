package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

func NewLogsCmd(app *App) *cobra.Command {
	var (
		category string
		limit    int64
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the latest records of the MongoDB log sink",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mongo, err := app.Mongo()
			if err != nil {
				return err
			}
			if mongo == nil {
				return errors.New("mongo log sink is disabled")
			}
			records, err := mongo.ReadLogMessages(category, limit)
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			for _, record := range records {
				if err = encoder.Encode(record); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "logger category, e.g. sign or server")
	cmd.Flags().Int64Var(&limit, "limit", 20, "number of records")

	return cmd
}
