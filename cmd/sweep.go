package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appserver "github.com/drivekit/drivekit/internal/app/server"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep-drafts",
	Short: "Delete draft slots left over from abandoned booking funnels",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		app, err := appserver.InitializeMaintenance()
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		swept, err := app.Schedule.SweepAbandonedDrafts(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("swept %d draft slots\n", swept)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
