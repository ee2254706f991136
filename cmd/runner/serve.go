package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/atbot/runner/internal/games/runner"
	"github.com/atbot/runner/internal/metrics"
	"github.com/atbot/runner/internal/platform/tui"
	"github.com/atbot/runner/internal/storage"
)

var _ runner.Observer = (*metrics.Metrics)(nil)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
	flagRate        float64
	flagBurst       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, starting at the boot screen.
Scores are stored per-server (all users share the same leaderboard) and
are recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.atbot/host_key

New sessions are admitted at --rate per second with bursts of --burst;
sessions over the limit are turned away with a message.

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --metrics :9090           # Also expose /metrics and /healthz
  runner serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics HTTP address (disabled if empty)")
	serveCmd.Flags().Float64Var(&flagRate, "rate", defaults.SessionsPerSecond, "New sessions admitted per second")
	serveCmd.Flags().IntVar(&flagBurst, "burst", defaults.SessionBurst, "Session admission burst")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(os.Stderr, "runner-ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	runnerCfg, preset, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("serving without score storage", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	m := metrics.New()

	cfg := tui.SSHServerConfig{
		Address:           flagSSHAddr,
		HostKeyPath:       flagHostKey,
		IdleTimeout:       time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:          flagFPS,
		Difficulty:        string(preset),
		SessionsPerSecond: flagRate,
		SessionBurst:      flagBurst,
	}

	server, err := tui.NewSSHServer(cfg, tui.SSHDeps{
		NewGame: func() tui.Game {
			return runner.New(runner.Options{
				Config:   runnerCfg,
				Logger:   logger.WithPrefix("runner"),
				Observer: m,
			})
		},
		Store:    store,
		Logger:   logger,
		Sessions: m,
		Ticks:    m,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting runner SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(gctx)
	})
	if flagMetricsAddr != "" {
		g.Go(func() error {
			return metrics.Serve(gctx, flagMetricsAddr, metrics.NewRouter(m, logger), logger)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
