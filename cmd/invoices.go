package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appserver "github.com/drivekit/drivekit/internal/app/server"
)

var invoicesCmd = &cobra.Command{
	Use:   "send-invoices",
	Short: "Invoice weekly lesson payments entering their collection window",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		app, err := appserver.InitializeMaintenance()
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		sent, err := app.Bookings.SendDueInvoices(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("sent %d invoices\n", sent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
}
