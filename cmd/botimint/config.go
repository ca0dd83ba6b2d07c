package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kodylow/botimint/internal/control"
)

var configCmd = &cobra.Command{
	Use:   "config <get|set|keys> [key] [value]",
	Short: "Get or set configuration values",
	Long: `Read botimint configuration.

Values come from the running bot when there is one, otherwise from the
environment and .env file. Only log-level can be changed, and only on a
running bot.

Examples:
  # List all config keys
  botimint config keys

  # Get a specific config value
  botimint config get rpc-path

  # Turn on debug logging without a restart
  botimint config set log-level debug`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	client := control.NewClient(cfg.StateDir)
	out := cmd.OutOrStdout()

	var msg *control.Message
	switch sub := args[0]; sub {
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: botimint config get <key>")
		}
		msg = &control.Message{Command: "config.get", Args: args[1:]}
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: botimint config set <key> <value>")
		}
		msg = &control.Message{Command: "config.set", Args: args[1:]}
	case "keys":
		msg = &control.Message{Command: "config.keys"}
	default:
		return fmt.Errorf("unknown subcommand: %s (expected: get, set, or keys)", sub)
	}

	resp, err := client.Send(ctx, msg)
	if errors.Is(err, control.ErrNotRunning) {
		if args[0] == "set" {
			return fmt.Errorf("config set needs a running bot: %w", err)
		}
		// Answer from the local configuration instead.
		local := control.NewConfigRouter(cfg).Router()
		resp = local.Dispatch(ctx, control.NewRequest(&control.Message{
			Command: strings.TrimPrefix(msg.Command, "config."),
			Args:    msg.Args,
		}))
	} else if err != nil {
		return err
	}

	if resp.Error != "" {
		return errors.New(resp.Error)
	}
	if args[0] == "keys" {
		for _, k := range strings.Fields(resp.Response) {
			fmt.Fprintln(out, k)
		}
		return nil
	}
	fmt.Fprintln(out, resp.Response)
	return nil
}
