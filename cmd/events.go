/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/mq"
	"github.com/vivek-dahikar/AutoRegisterAgent/types"
)

// eventsCmd tails the auth events channel.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print signup and login events as they are published",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		queue, err := mq.Open(ctx, cfg.MQ)
		if err != nil {
			return err
		}
		if queue == nil {
			return errors.New("MQ_BACKEND is none; set it to rabbitmq or pubsub")
		}
		defer queue.Close()

		err = queue.Subscribe(ctx, cfg.MQ.Channel, printEvent(cmd))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func printEvent(cmd *cobra.Command) mq.Handler {
	return func(ctx context.Context, msg mq.Message) error {
		var event types.AuthEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// Undecodable payloads are acknowledged and reported, not redelivered forever.
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping message %s: %v\n", msg.ID, err)
			return nil
		}
		status := "rejected"
		if event.Accepted {
			status = "accepted"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-6s %-8s %s\n",
			event.OccurredAt.Format("2006-01-02T15:04:05Z07:00"), event.Type, status, event.Username)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
