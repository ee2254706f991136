package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/atbot/runner/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML after the config search
(--config, ~/.atbot/configs/runner.yaml, ./configs/runner.yaml, built-in)
and the difficulty preset have been applied.

The output is a valid runner.yaml and can be saved and edited:
  runner config > ~/.atbot/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	logger, closer, err := newLogger(os.Stderr, "runner")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
