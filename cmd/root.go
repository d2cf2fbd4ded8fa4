package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drivekit",
	Short: "Driving lesson scheduling and booking service",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
