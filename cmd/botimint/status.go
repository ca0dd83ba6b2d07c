package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kodylow/botimint/internal/control"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of the running bot",
	Long:  `Display whether a bot is running for this state directory and which node it serves.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client := control.NewClient(cfg.StateDir)
	out := cmd.OutOrStdout()

	status, err := client.Status(cmd.Context())
	if err != nil {
		return err
	}
	if status.State == control.StatusStopped {
		fmt.Fprintf(out, "  %s %s\n", key("Bot:"), errorf("stopped"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, subtle("Start the bot with:"), cmdText("botimint run"))
		return nil
	}

	fmt.Fprintln(out, title("Botimint Status"))
	fmt.Fprintf(out, "  %s %s\n", key("Bot:"), success(status.State))
	printIfSet(out, "PID:", strconv.Itoa(status.PID))
	if !status.StartedAt.IsZero() {
		printIfSet(out, "Uptime:", time.Since(status.StartedAt).Round(time.Second).String())
	}
	printIfSet(out, "Commands:", strconv.Itoa(status.Commands))
	fmt.Fprintln(out)

	fmt.Fprintln(out, subtle("  Node:"))
	if status.NodeID == "" {
		fmt.Fprintf(out, "  %s %s\n", key("ID:"), warning("unknown (node was unreachable at startup)"))
	}
	printIfSet(out, "ID:", status.NodeID)
	printIfSet(out, "Alias:", status.NodeAlias)
	printIfSet(out, "Network:", status.Network)
	fmt.Fprintln(out)

	fmt.Fprintln(out, subtle("  Access:"))
	fmt.Fprintf(out, "  %s %s\n", key("Call:"), cmdText("botimint call <command> name=value"))
	if level, err := client.ConfigGet(cmd.Context(), control.ConfigKeyLogLevel); err == nil {
		printIfSet(out, "Log level:", level)
	}
	if path, err := client.ConfigGet(cmd.Context(), control.ConfigKeyLogPath); err == nil {
		printIfSet(out, "Log:", path)
	}
	return nil
}
