package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/os-sim/os-sim/api"
	"github.com/os-sim/os-sim/config"
)

var (
	configPath string // Server config file
	addr       string // Listen address override
)

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve both simulators over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			logrus.Fatalf("unable to load server config; %v", err)
		}
		if addr != "" {
			cfg.Addr = addr
		}
		if !cmd.Flags().Changed("log") {
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				logrus.Fatalf("Invalid log level in config: %s", cfg.LogLevel)
			}
			logrus.SetLevel(level)
		}

		app := api.NewApp(cfg)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			logrus.Info("Shutting down")
			if err := app.Shutdown(); err != nil {
				logrus.Errorf("shutdown: %v", err)
			}
		}()

		logrus.Infof("Listening on %s", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Server config file (YAML); defaults to ./config.yaml when present")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides the config (e.g. :9095)")
}
