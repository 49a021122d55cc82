/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/services"
)

// hashCmd prints the digest the credential store keeps for a password.
var hashCmd = &cobra.Command{
	Use:   "hash <password>",
	Short: "Print the stored digest for a password",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), services.HashPassword(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
