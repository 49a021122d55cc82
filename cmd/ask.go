/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/services"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/textgen"
)

// newGenerator is swapped in tests.
var newGenerator = func(cmd *cobra.Command) (textgen.Generator, error) {
	cfg := loadConfig(cmd)
	ollama, err := textgen.NewOllamaGenerator(cfg.LLM, nil)
	if err != nil {
		return nil, err
	}
	return textgen.WithTimeout(ollama, cfg.LLM.Timeout), nil
}

// askCmd relays a prompt the same way POST /process does.
var askCmd = &cobra.Command{
	Use:   "ask [prompt...]",
	Short: "Send a prompt to the configured model and print the answer",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		generator, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		outcome, err := services.NewRelayService(generator).Process(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if !outcome.Accepted() {
			return errors.New(outcome.Message)
		}
		fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
