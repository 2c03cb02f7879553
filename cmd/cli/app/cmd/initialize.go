package cmd

import (
	"github.com/spf13/cobra"

	"runsh/cmd/cli/app"
	"runsh/internal/cli/output"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new configuration file with sample values",
	Long: `A new configuration file is written to ~/.runsh.yaml. This file contains
sample values for all configuration options. The file is not created if it
already exists.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		if err := handler.Handle(); err != nil {
			return err
		}

		output.PrintSuccess("configuration file written to ~/.runsh.yaml")
		return nil
	},
}
