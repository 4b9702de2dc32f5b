package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/research-desk/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize researchdesk configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the completion proxy and model and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
