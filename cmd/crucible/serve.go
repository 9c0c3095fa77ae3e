package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucible-tabletop/crucible/internal/config"
	"github.com/crucible-tabletop/crucible/internal/platform/tui"
	"github.com/crucible-tabletop/crucible/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
	flagEventDelay  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the crucible SSH server",
	Long: `Start an SSH server that lets users connect, set up matches and watch
them play out. Match history is stored per-server.

With --http, a spectator feed is served alongside: the configured
match replays in a loop and every battle event is streamed as JSON
over WebSocket at /ws.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.crucible/host_key

Examples:
  crucible serve                           # Listen on :23234 with auto-generated key
  crucible serve --ssh :2222               # Listen on port 2222
  crucible serve --http :8080              # Also stream matches over WebSocket
  crucible serve --host-key ./my_host_key  # Use specific host key
  crucible serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Spectator feed address (empty = disabled)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom match config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagEventDelay, "event-delay", 250, "Spectator feed pacing in milliseconds per event")
}

func runServe(_ *cobra.Command, _ []string) {
	match, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading match config: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		match.Seed = flagSeed
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Match:       match,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	// Optional spectator feed alongside the SSH server
	var cancelWeb context.CancelFunc
	if flagHTTPAddr != "" {
		webServer, webErr := web.NewServer(web.ServerConfig{
			Address:    flagHTTPAddr,
			Match:      match,
			EventDelay: time.Duration(flagEventDelay) * time.Millisecond,
		})
		if webErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating spectator server: %v\n", webErr)
			os.Exit(1)
		}

		var ctx context.Context
		ctx, cancelWeb = context.WithCancel(context.Background())
		go func() {
			if serveErr := webServer.ListenAndServe(ctx); serveErr != nil {
				fmt.Fprintf(os.Stderr, "Spectator server error: %v\n", serveErr)
			}
		}()
		fmt.Printf("Spectator feed on ws://localhost%s/ws\n", flagHTTPAddr)
	}

	fmt.Printf("Starting crucible SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	err = server.ListenAndServe()
	if cancelWeb != nil {
		cancelWeb()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
