package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/endzone-trade-service/internal/config"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
)

const appVersion = "dev"

var (
	envFile string
	cfg     config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tradectl",
	Short:         "Endzone trade recommendations from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = config.Load()
		// stdout carries command output and the MCP stream, so logs go to stderr.
		logger = logging.NewLogger(logging.Config{
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Service: "tradectl",
			Version: appVersion,
			Output:  os.Stderr,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}
