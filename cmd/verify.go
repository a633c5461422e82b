package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"borica/internal"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var errNotVerified = errors.New("callback signature is not valid")

func NewVerifyCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a gateway callback",
		Long: `Reads the callback fields as a JSON object, checks P_SIGN against the gateway
certificate and prints the outcome. Exits with an error when the signature does not match.`,
		Example: `  borica verify --file callback.json
  cat callback.json | borica verify --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := readCallback(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			checkout, logger, err := app.Checkout("verify")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := internal.WithRequestID(context.Background())
			result, err := checkout.VerifyCallback(ctx, fields)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if result == nil {
				fmt.Fprintln(out, "callback ignored: unsupported transaction type")
				return nil
			}

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err = encoder.Encode(result); err != nil {
				return err
			}
			if !result.Verified {
				return errNotVerified
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "-", "JSON file with the callback fields, - for stdin")

	return cmd
}

// readCallback decodes a JSON object; numbers and booleans are turned into
// their string form as the gateway posts everything as text.
func readCallback(stdin io.Reader, file string) (map[string]string, error) {
	var data []byte
	var err error
	if file == "-" || file == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read callback: %w", err)
	}

	var raw map[string]interface{}
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode callback: %w", err)
	}
	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		if value == nil {
			fields[key] = ""
			continue
		}
		if fields[key], err = cast.ToStringE(value); err != nil {
			return nil, fmt.Errorf("callback field %s: %w", key, err)
		}
	}
	return fields, nil
}
