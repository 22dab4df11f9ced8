package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/platform/tui"
	"github.com/vovakirdan/tui-fifteen/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWebAddr     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant menu and its own
puzzle. Records are stored per server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fifteen/host_key

Examples:
  fifteen serve                           # Listen on :23234 with auto-generated key
  fifteen serve --ssh :2222               # Listen on port 2222
  fifteen serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the puzzle to browsers",
	Long: `Start an HTTP server with a clickable puzzle grid.

Every open page gets its own puzzle over a websocket.

Endpoints:
  GET /                      - the puzzle page
  GET /ws?variant=<id>       - websocket for one puzzle
  GET /api/variants          - list of variants
  GET /api/records/<id>      - best solves for a variant
  GET /health                - health check

Examples:
  fifteen web
  fifteen web --addr :9000`,
	RunE: runWeb,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config, 30)")

	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (default from config, :8080)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfigFrom(appConfig.SSH)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store)
	if err != nil {
		return err
	}

	fmt.Printf("Starting fifteen SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

func runWeb(_ *cobra.Command, _ []string) error {
	addr := appConfig.Web.Address
	if flagWebAddr != "" {
		addr = flagWebAddr
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(web.Config{Address: addr, Seed: flagSeed}, store, nil)
	fmt.Printf("Open http://localhost%s in a browser\n", addr)
	return server.ListenAndServe(ctx)
}
