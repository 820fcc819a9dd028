package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zulandar/yardline/internal/dashboard"
	"github.com/zulandar/yardline/internal/db"
	"github.com/zulandar/yardline/internal/view"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		Long: `Launches the record form and list in a local web dashboard.

The records table is dropped and recreated on every start, so records from
a previous run are discarded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Yardline config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default: dashboard.port from config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	out := cmd.OutOrStdout()

	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Initialize(ctx, gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Initialized records table in %s\n", storeLabel(cfg.Database))

	hub := dashboard.NewHub()
	ctrl := view.New(gormDB, view.Options{OnReload: hub.Publish})
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(out, "\nReceived %s, shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if port == 0 {
		port = cfg.Dashboard.Port
	}
	return dashboard.Start(ctx, dashboard.StartOpts{
		Controller: ctrl,
		Hub:        hub,
		Port:       port,
		Out:        out,
	})
}
