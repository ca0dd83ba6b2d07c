package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kodylow/botimint/internal/report"
)

var reportFlags struct {
	json bool
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the last startup report",
	Long:  `Print the report the bot wrote after publishing its commands: node identity and per-command publication results.`,
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportFlags.json, "json", false, "Print the raw JSON report")
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rep, err := report.Load(cfg.ReportPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reportFlags.json {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	fmt.Fprint(out, report.RenderText(rep))
	return nil
}
