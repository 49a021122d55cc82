/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vivek-dahikar/AutoRegisterAgent/config"
)

var (
	flagPort       int
	flagModel      string
	flagOllamaHost string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "autoregister",
	Short: "Signup and login service judged by a language model",
	Long: `autoregister serves /signup, /login and /process over HTTP. Each request
is judged by an Ollama model; usernames and password hashes are kept in
memory for the lifetime of the process.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "HTTP port (overrides SERVER_PORT)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Ollama model name (overrides LLM_MODEL)")
	rootCmd.PersistentFlags().StringVar(&flagOllamaHost, "ollama-host", "", "Ollama base URL (overrides OLLAMA_HOST)")
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.LoadConfig()
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.ServerPort = flagPort
	}
	if flags.Changed("model") {
		cfg.LLM.Model = flagModel
	}
	if flags.Changed("ollama-host") {
		cfg.LLM.Host = flagOllamaHost
	}
	return cfg
}
