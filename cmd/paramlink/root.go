package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/paramlink/internal/config"
	"github.com/aretw0/paramlink/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paramlink",
	Short: "paramlink binds a slider to a parameter of a live object",
	Long: `paramlink mounts a slider control on a scene, lets you pick a target object,
one of its sub-components and a numeric parameter, and keeps the slider and the
parameter in sync.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: ./paramlink.yaml or $PARAMLINK_CONFIG)")
	flags.String("scene", "", "Scene fixture (YAML); the demo scene when empty")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("label", "", "Initial slider label")
	flags.String("control-id", "", "Control ID used as the persistence key")
	flags.String("store", "", "Snapshot backend: memory, file, redis or sqlite")
}

// loadConfig resolves the configuration and the logger for cmd.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(level), nil
}
