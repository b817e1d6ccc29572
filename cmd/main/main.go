package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pokedex/viewer/internal/config"
	"pokedex/viewer/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	app *container.Container
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Browse PokeAPI creatures from the terminal",
	Long: `Fetches a page of creatures from PokeAPI, then lists, filters,
sorts and shows them. "serve" exposes the same views as JSON.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(listCmd, galleryCmd, showCmd, serveCmd, typesCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	cfg.ApplyLogging()
	log.Debug("Configuration loaded successfully")

	app, err = container.New(cfg)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
