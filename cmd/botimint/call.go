package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kodylow/botimint/internal/control"
)

var callFlags struct {
	timeout time.Duration
}

var callCmd = &cobra.Command{
	Use:   "call <command> [name=value ...]",
	Short: "Invoke a command through the running bot",
	Long: `Send one command invocation to the running bot over its control socket.
The bot decodes and executes it exactly as it would a Discord interaction,
sharing the bot's node connection.

Values are converted to each parameter's declared type. Lists and records
are given as JSON text.

Examples:
  botimint call cln_info
  botimint call cln_invoice amount_msat=10sat label=coffee description=latte
  botimint call cln_sendpay payment_hash=... route='[{"id":"02..","channel":"103x1x0","amount_msat":"1000msat","delay":9}]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().DurationVar(&callFlags.timeout, "timeout", 0, "Give up waiting after this long (0 waits for the node)")
}

func runCall(cmd *cobra.Command, args []string) error {
	name, options, err := parseCallArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if callFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, callFlags.timeout)
		defer cancel()
	}

	reply, err := control.NewClient(cfg.StateDir).Call(ctx, name, options)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

// parseCallArgs splits "name k=v k=v" into the command and its options.
func parseCallArgs(args []string) (string, map[string]any, error) {
	name := args[0]
	if strings.Contains(name, "=") {
		return "", nil, fmt.Errorf("first argument must be a command name, got %q", name)
	}
	positional, options := control.ParseArgs(args[1:])
	if len(positional) > 0 {
		return "", nil, fmt.Errorf("arguments must be name=value, got %q", positional[0])
	}
	return name, options, nil
}
