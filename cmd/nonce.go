package cmd

import (
	"fmt"

	"borica/internal"

	"github.com/spf13/cobra"
)

func NewNonceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nonce",
		Short: "Print a fresh NONCE value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := internal.GenerateNonce()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), nonce)
			return nil
		},
	}
}
