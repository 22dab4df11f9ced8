package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search order has been applied:
--config, ~/.fifteen/configs/fifteen.yaml, ./configs/fifteen.yaml, then the
built-in defaults. Redirect the output to start a config file.

Examples:
  fifteen config > ~/.fifteen/configs/fifteen.yaml`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := config.Marshal(appConfig)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
