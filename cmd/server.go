/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/server"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the autoregister HTTP server",
	Long: `Starts the autoregister HTTP server. Usage:

	autoregister server --port 5000 --model llama3.2
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		logger := logging.New(cfg.Log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := server.New(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
			os.Exit(1)
		}

		logger.Info(ctx, "starting server", "addr", srv.Addr(), "model", cfg.LLM.Model, "mq_backend", cfg.MQ.Backend)
		if err := srv.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
