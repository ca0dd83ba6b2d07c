package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type StartupReport struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	Bot          BotInfo       `json:"bot"`
	Node         NodeInfo      `json:"node"`
	Publications []Publication `json:"publications"`
}

type BotInfo struct {
	PID           int    `json:"pid"`
	Scope         string `json:"scope"`
	StateDir      string `json:"state_dir"`
	LogPath       string `json:"log_path"`
	ControlSocket string `json:"control_socket"`
	MetricsAddr   string `json:"metrics_addr,omitempty"`
	RPCPath       string `json:"rpc_path"`
}

type NodeInfo struct {
	ID               string `json:"id,omitempty"`
	Alias            string `json:"alias,omitempty"`
	Network          string `json:"network,omitempty"`
	Version          string `json:"version,omitempty"`
	BlockHeight      uint32 `json:"blockheight,omitempty"`
	NumPeers         int    `json:"num_peers"`
	ConnectionString string `json:"connection_string,omitempty"`
	// Error is set when the node could not be reached at startup.
	Error string `json:"error,omitempty"`
}

// Publication is the outcome of publishing one command to the chat platform.
type Publication struct {
	Command string `json:"command"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Counts returns how many publications succeeded and failed.
func (r *StartupReport) Counts() (published, failed int) {
	for _, p := range r.Publications {
		if p.Error != "" {
			failed++
		} else {
			published++
		}
	}
	return published, failed
}

func SaveJSON(path string, report *StartupReport) error {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal startup report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write startup report: %w", err)
	}
	return nil
}

// Load reads a report written by SaveJSON.
func Load(path string) (*StartupReport, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read startup report: %w", err)
	}
	var r StartupReport
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode startup report: %w", err)
	}
	return &r, nil
}

func RenderText(r *StartupReport) string {
	var b strings.Builder
	b.WriteString("Botimint Startup Report\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", r.GeneratedAt.Format(time.RFC3339)))
	b.WriteString("\n")

	b.WriteString("Bot\n")
	b.WriteString(fmt.Sprintf("  PID: %d\n", r.Bot.PID))
	b.WriteString(fmt.Sprintf("  Commands published to: %s\n", r.Bot.Scope))
	b.WriteString(fmt.Sprintf("  State directory: %s\n", r.Bot.StateDir))
	b.WriteString(fmt.Sprintf("  Control socket: %s\n", r.Bot.ControlSocket))
	if r.Bot.MetricsAddr != "" {
		b.WriteString(fmt.Sprintf("  Metrics: http://%s/metrics\n", r.Bot.MetricsAddr))
	}
	b.WriteString(fmt.Sprintf("  Log file: %s\n", r.Bot.LogPath))
	b.WriteString("\n")

	b.WriteString("Node\n")
	b.WriteString(fmt.Sprintf("  RPC socket: %s\n", r.Bot.RPCPath))
	if r.Node.Error != "" {
		b.WriteString(fmt.Sprintf("  Status: unreachable (%s)\n", r.Node.Error))
	} else {
		b.WriteString(fmt.Sprintf("  ID: %s\n", r.Node.ID))
		if r.Node.Alias != "" {
			b.WriteString(fmt.Sprintf("  Alias: %s\n", r.Node.Alias))
		}
		b.WriteString(fmt.Sprintf("  Network/Version: %s / %s\n", r.Node.Network, r.Node.Version))
		b.WriteString(fmt.Sprintf("  Block height: %d\n", r.Node.BlockHeight))
		b.WriteString(fmt.Sprintf("  Peers: %d\n", r.Node.NumPeers))
		if r.Node.ConnectionString != "" {
			b.WriteString(fmt.Sprintf("  Connect: %s\n", r.Node.ConnectionString))
		}
	}
	b.WriteString("\n")

	published, failed := r.Counts()
	b.WriteString("Commands\n")
	b.WriteString(fmt.Sprintf("  Published: %d of %d\n", published, len(r.Publications)))
	if failed > 0 {
		b.WriteString(fmt.Sprintf("  Failed: %d\n", failed))
		for _, p := range r.Publications {
			if p.Error != "" {
				b.WriteString(fmt.Sprintf("    %s: %s\n", p.Command, p.Error))
			}
		}
	}

	return b.String()
}
