package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Kodylow/botimint/internal/catalog"
	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/config"
	"github.com/Kodylow/botimint/internal/control"
	"github.com/Kodylow/botimint/internal/discord"
	"github.com/Kodylow/botimint/internal/lightning"
	"github.com/Kodylow/botimint/internal/logging"
	"github.com/Kodylow/botimint/internal/report"
	"github.com/Kodylow/botimint/internal/telemetry"
	"github.com/Kodylow/botimint/internal/util"
)

const nodeProbeTimeout = 10 * time.Second

var runFlags struct {
	guildID     string
	metricsAddr string
	concurrency int
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot",
	Long: `Connect to Discord, publish every command and answer invocations
from the Core Lightning node until interrupted.

Settings come from the environment and the .env file:
  DISCORD_CLIENT_TOKEN   bot token (required)
  GUILD_ID               publish to one guild instead of globally
  CLN_RPC_PATH           node RPC socket (required)`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.guildID, "guild", "", "Guild to publish commands to (overrides "+config.KeyGuildID+")")
	f.StringVar(&runFlags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (overrides "+config.KeyMetricsAddr+")")
	f.IntVar(&runFlags.concurrency, "publish-concurrency", 0, "Parallel command publications (overrides "+config.KeyPublishConcurrency+")")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if runFlags.guildID != "" {
		cfg.GuildID = runFlags.guildID
	}
	if runFlags.metricsAddr != "" {
		cfg.MetricsAddr = runFlags.metricsAddr
	}
	if runFlags.concurrency != 0 {
		cfg.PublishConcurrency = runFlags.concurrency
	}
	if err := cfg.ValidateForRun(); err != nil {
		return err
	}

	if err := logging.Init(cfg.LogPath, cfg.LogLevel); err != nil {
		return err
	}
	log := logging.L()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry, err := catalog.NewRegistry()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewPrometheusMetrics(promRegistry)

	if !util.IsSocket(cfg.RPCPath) {
		log.Warn("node RPC socket not found; commands will fail until it appears", "path", cfg.RPCPath)
	}
	node := lightning.NewClient(cfg.RPCPath)
	defer func() { _ = node.Close() }()
	dispatcher := command.NewDispatcher(registry, command.NewMetricInvoker(node, metrics), command.WithMetrics(metrics))

	rep := &report.StartupReport{
		GeneratedAt: time.Now().UTC(),
		Bot: report.BotInfo{
			PID:           os.Getpid(),
			Scope:         publishScope(cfg.GuildID),
			StateDir:      cfg.StateDir,
			LogPath:       cfg.LogPath,
			ControlSocket: control.SocketPath(cfg.StateDir),
			MetricsAddr:   cfg.MetricsAddr,
			RPCPath:       cfg.RPCPath,
		},
	}

	ctrl := control.NewLocalController(dispatcher)
	rep.Node = probeNode(ctx, node, ctrl)

	listener, err := control.NewListener(cfg.StateDir, ctrl)
	if err != nil {
		return fmt.Errorf("control socket: %w", err)
	}
	listener.Router().Mount("config", control.NewConfigRouter(cfg).Router())

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		_ = listener.Close()
		return fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listener.Start(gctx)
		return nil
	})
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return telemetry.Serve(gctx, cfg.MetricsAddr, promRegistry)
		})
	}

	bot := discord.New(session, dispatcher, discord.Options{
		GuildID:     cfg.GuildID,
		Concurrency: cfg.PublishConcurrency,
	})
	bot.Attach(gctx, session, func(results []discord.PublishResult) {
		rep.GeneratedAt = time.Now().UTC()
		rep.Publications = publications(results)
		published, failed := rep.Counts()
		metrics.SetPublished(published)
		if err := report.SaveJSON(cfg.ReportPath, rep); err != nil {
			log.Warn("save startup report", "error", err)
		}
		log.Info("commands published", "published", published, "failed", failed, "report", cfg.ReportPath)
	})

	if err := session.Open(); err != nil {
		cancel()
		_ = g.Wait()
		return fmt.Errorf("connect to discord: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title("Botimint is running"))
	printIfSet(out, "Node:", rep.Node.ID)
	printIfSet(out, "Commands:", fmt.Sprint(registry.Len()))
	printIfSet(out, "Scope:", rep.Bot.Scope)
	printIfSet(out, "Control:", rep.Bot.ControlSocket)
	if cfg.MetricsAddr != "" {
		printIfSet(out, "Metrics:", "http://"+cfg.MetricsAddr+"/metrics")
	}
	printIfSet(out, "Log:", cfg.LogPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, subtle("Invoke a command locally with:"), cmdText("botimint call cln_info"))

	<-gctx.Done()
	fmt.Fprintln(out, subtle("\nShutting down..."))
	if err := session.Close(); err != nil {
		log.Warn("close discord session", "error", err)
	}
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// probeNode fetches node identity for the status command and the startup
// report. A failure is recorded, not fatal: the node may come up later.
func probeNode(ctx context.Context, node *lightning.Client, ctrl *control.LocalController) report.NodeInfo {
	ctx, cancel := context.WithTimeout(ctx, nodeProbeTimeout)
	defer cancel()

	info, err := node.Getinfo(ctx)
	if err != nil {
		logging.L().Warn("node not reachable", "error", err)
		return report.NodeInfo{Error: err.Error()}
	}
	ctrl.SetNode(info)
	logging.L().Info("connected to node", "id", info.ID, "alias", info.Alias, "network", info.Network)

	ni := report.NodeInfo{
		ID:          info.ID,
		Alias:       info.Alias,
		Network:     info.Network,
		Version:     info.Version,
		BlockHeight: info.BlockHeight,
		NumPeers:    info.NumPeers,
	}
	if cs, err := info.ConnectionString(); err == nil {
		ni.ConnectionString = cs
	}
	return ni
}

func publishScope(guildID string) string {
	if guildID == "" {
		return "all guilds"
	}
	return "guild " + guildID
}

func publications(results []discord.PublishResult) []report.Publication {
	out := make([]report.Publication, len(results))
	for i, r := range results {
		out[i] = report.Publication{Command: r.Command, ID: r.ID}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}
