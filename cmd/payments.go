package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

func newPaymentsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Show the payment summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var info domain.PaymentInfo

			fetch := func(ctx context.Context) error {
				var err error
				info, err = app.students.Payments(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching payment summary...", fetch); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Total Payable: %12.2f\n", info.TotalPayable)
			_, _ = fmt.Fprintf(out, "Total Paid:    %12.2f\n", info.TotalPaid)
			_, _ = fmt.Fprintf(out, "Total Due:     %12.2f\n", info.TotalDue)
			_, _ = fmt.Fprintf(out, "Status:        %s\n", info.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.AddCommand(newPaymentHistoryCmd(app))

	return cmd
}

func newPaymentHistoryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var records []domain.PaymentRecord

			fetch := func(ctx context.Context) error {
				var err error
				records, err = app.students.PaymentHistory(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching payment history...", fetch); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(out, "No payments recorded.")
				return nil
			}

			for _, record := range records {
				_, _ = fmt.Fprintf(out, "%-12s  %10.2f  %-10s  %s\n", record.Date, record.Amount, record.Method, record.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
