// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/journal-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve exposes the production pipeline over HTTP: submission CRUD under
/journals, generation under /pipeline, translation under /translate,
recompilation under /compile, and a raw model passthrough under /ask.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.cfg.Server.Addr
		}

		a.logger.Info("listening", zap.String("addr", addr))
		return server.New(a.runner, a.ask, a.logger).Router().Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, :8000)")

	rootCmd.AddCommand(serveCmd)
}
