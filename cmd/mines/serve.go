package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Minesweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the board menu. Every
session plays its own games; finished games go into the shared history
under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config
  - Otherwise, auto-generates a key at ~/.mines/host_key

Examples:
  mines serve                           # Listen on :23234 with auto-generated key
  mines serve --ssh :2222               # Listen on port 2222
  mines serve --host-key ./my_host_key  # Use specific host key
  mines serve --max-sessions 8          # Reject the ninth concurrent session

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", -1, "Maximum concurrent sessions, 0 = unlimited (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, _ := newLogger(cfg, false)

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagMaxSessions >= 0 {
		cfg.Server.MaxSessions = flagMaxSessions
	}

	store := openStore(cfg)
	defer store.Close()

	serverCfg := tui.DefaultSSHServerConfig()
	if cfg.Server.Address != "" {
		serverCfg.Address = cfg.Server.Address
	}
	if cfg.Server.IdleTimeout > 0 {
		serverCfg.IdleTimeout = cfg.Server.IdleTimeout
	}
	serverCfg.HostKeyPath = config.ExpandHome(cfg.Server.HostKeyPath)
	serverCfg.MaxSessions = cfg.Server.MaxSessions
	serverCfg.Settings = settingsFrom(cfg.Game)

	server, err := tui.NewSSHServer(serverCfg, store, logger.WithPrefix("mines-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting mines SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server error: %v", err)
	}
}
