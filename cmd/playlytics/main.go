// Command playlytics is a small CLI for exercising a Playlytics endpoint
// from the shell: it ships events read from stdin and evaluates experiments.
//
// Usage:
//
//	echo '{"event_type":"boss_defeated","properties":{"boss":"warden"}}' | \
//	    playlytics track --server-key srv-... --base-url http://localhost:3000
//
//	playlytics evaluate double-xp-weekend --player 5f0c... --server-key srv-...
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	playlytics "github.com/playlytics/playlytics-go"
)

type rootFlags struct {
	serverKey string
	baseURL   string
	debug     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "playlytics",
		Short:         "Send events to and query a Playlytics endpoint",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&flags.serverKey, "server-key", os.Getenv(playlytics.EnvServerKey), "server key (defaults to $"+playlytics.EnvServerKey+")")
	rootCmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "base URL of the Playlytics API")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newTrackCmd(flags))
	rootCmd.AddCommand(newEvaluateCmd(flags))

	return rootCmd
}

// newClient builds an SDK client from the shared flags.
func newClient(flags *rootFlags) (*playlytics.Client, error) {
	logger := logrus.New()
	if flags.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts := []playlytics.ConfigOption{
		playlytics.WithAutoFlush(false),
		playlytics.WithStructuredLogger(playlytics.NewLogrusAdapter(logger)),
	}
	if flags.baseURL != "" {
		opts = append(opts, playlytics.WithBaseURL(flags.baseURL))
	}

	return playlytics.New(flags.serverKey, opts...)
}

// stdinEvent is the JSON shape accepted on stdin by the track command.
type stdinEvent struct {
	EventType  string         `json:"event_type"`
	Properties map[string]any `json:"properties"`
}

func newTrackCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Read JSON events from stdin (one per line) and ship them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}

			count := 0
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}
				var ev stdinEvent
				if err := json.Unmarshal(line, &ev); err != nil {
					return fmt.Errorf("invalid event on stdin: %w", err)
				}
				if ev.EventType == "" {
					return fmt.Errorf("event on stdin is missing event_type")
				}
				client.Track(ev.EventType, ev.Properties)
				count++
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := client.Shutdown(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sent %d events\n", count)
			return nil
		},
	}
}

func newEvaluateCmd(flags *rootFlags) *cobra.Command {
	var playerUUID string

	evaluateCmd := &cobra.Command{
		Use:   "evaluate <experiment-id>",
		Short: "Evaluate an experiment for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			defer client.Shutdown(context.Background())

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			inExperiment := client.EvaluateExperiment(ctx, args[0], playerUUID)
			fmt.Fprintln(cmd.OutOrStdout(), inExperiment)
			return nil
		},
	}

	evaluateCmd.Flags().StringVar(&playerUUID, "player", "", "player UUID (optional)")

	return evaluateCmd
}
