package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"borica/entity"
	"borica/internal"

	"github.com/spf13/cobra"
)

func NewSignCmd(app *App) *cobra.Command {
	var (
		trType     int
		order      string
		format     string
		autoSubmit bool
		details    entity.OrderDetails
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Build and sign a gateway request",
		Long: `Builds a request from the configured merchant defaults and the flags, signs it
and prints the wire fields as JSON or as an HTML form.`,
		Example: `  borica sign --type 1 --amount 10.20 --order 123 --desc "Order 123"
  borica sign --type 90 --order 123 --tran-trtype 1 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := entity.TransactionType(trType)
			if !t.IsValid() {
				return fmt.Errorf("unsupported transaction type %d", trType)
			}
			details.Type = t
			if order != "" {
				var err error
				if details.Order, err = internal.ToOrderNumber(order); err != nil {
					return fmt.Errorf("order: %w", err)
				}
			}

			checkout, logger, err := app.Checkout("sign")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := internal.WithRequestID(context.Background())
			form, err := checkout.PrepareForm(ctx, details)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(form)
			case "form":
				page, err := internal.RenderForm(form.Action, form.Fields, autoSubmit)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, page)
				return err
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}

	cmd.Flags().IntVar(&trType, "type", int(entity.Sale), "transaction type: 1, 12, 21, 22, 24 or 90")
	cmd.Flags().Float64Var(&details.Amount, "amount", 0, "order amount, e.g. 10.20")
	cmd.Flags().StringVar(&order, "order", "", "order number")
	cmd.Flags().StringVar(&details.Description, "desc", "", "order description")
	cmd.Flags().StringVar(&details.OrderIdentifier, "order-id", "", "AD.CUST_BOR_ORDER_ID value")
	cmd.Flags().StringVar(&details.Email, "email", "", "notification e-mail")
	cmd.Flags().StringVar(&details.Language, "lang", "", "payment page language: BG, EN or RU")
	cmd.Flags().StringVar(&details.RetrievalReferenceNumber, "rrn", "", "RRN of the original transaction")
	cmd.Flags().StringVar(&details.InternalReference, "int-ref", "", "INT_REF of the original transaction")
	cmd.Flags().StringVar(&details.OriginalTransactionType, "tran-trtype", "", "TRTYPE of the checked transaction (status check)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or form")
	cmd.Flags().BoolVar(&autoSubmit, "auto", false, "add the auto-submit script to the form")

	return cmd
}
