package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print external changes to the data files until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := assistant.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Printf("Watching %s for %s (Ctrl-C to stop)\n", assistant.Path(), watchPattern)

		// The channel closes when the context is cancelled.
		for e := range events {
			fmt.Printf("%s %s %s\n", time.Unix(e.Timestamp, 0).Format(time.TimeOnly), e.Type, e.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*.json", "Doublestar pattern for files to watch")
}
