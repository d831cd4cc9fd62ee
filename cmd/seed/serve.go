package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/seed-of-life/internal/games/seed"
	"github.com/vovakirdan/seed-of-life/internal/platform/tui"
	"github.com/vovakirdan/seed-of-life/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWSAddr      string
	flagWSOrigins   []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH and WebSocket servers",
	Long: `Start an SSH server for terminal play, a WebSocket server for browser
renderers, or both.

Each SSH connection gets its own session with the variant menu. Scores are
stored per server, so all users share the same leaderboard. Each WebSocket
connection plays its own game and receives JSON snapshot and event frames.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.seed/host_key

Examples:
  seed serve                           # SSH on :23234
  seed serve --ssh :2222               # SSH on port 2222
  seed serve --ws :8080                # SSH on :23234, WebSocket on :8080
  seed serve --ssh "" --ws :8080       # WebSocket only

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagWSAddr, "ws", "", "WebSocket server address (empty to disable)")
	serveCmd.Flags().StringSliceVar(&flagWSOrigins, "ws-origin", nil, "Extra origins allowed to open WebSocket sessions")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagWSAddr == "" {
		return errors.New("nothing to serve: set --ssh or --ws")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := runtimeConfig()
	eg, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		store := openStore()
		if store != nil {
			defer store.Close()
		}

		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = flagSSHAddr
		sshCfg.HostKeyPath = flagHostKey
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		sshCfg.Game = cfg

		server, err := tui.NewSSHServer(sshCfg, store)
		if err != nil {
			return err
		}
		fmt.Printf("SSH server on %s (connect with: ssh localhost -p %s)\n", server.Addr(), port(server.Addr()))
		eg.Go(func() error {
			return server.ListenAndServe(ctx)
		})
	}

	if flagWSAddr != "" {
		wsCfg := web.DefaultConfig()
		wsCfg.Address = flagWSAddr
		wsCfg.TickRate = cfg.TickRate
		wsCfg.Params = seed.LoadParams(cfg, log.Default())
		wsCfg.OriginPatterns = flagWSOrigins

		server := web.NewServer(wsCfg)
		fmt.Printf("WebSocket server on %s (sessions at /ws)\n", flagWSAddr)
		eg.Go(func() error {
			return server.ListenAndServe(ctx)
		})
	}

	fmt.Println("Press Ctrl+C to stop")
	return eg.Wait()
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
