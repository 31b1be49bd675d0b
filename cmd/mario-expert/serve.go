package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagServeConfig  string
	flagServeSimCfg  string
	flagServeProfile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and watch the agent
play. Each connection gets its own course; finished episodes land in
the shared database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mario-expert/host_key

Examples:
  mario-expert serve                           # Listen on :23234
  mario-expert serve --ssh :2222               # Listen on port 2222
  mario-expert serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom agent config YAML")
	serveCmd.Flags().StringVar(&flagServeSimCfg, "sim-config", "", "Path to custom course config YAML")
	serveCmd.Flags().StringVar(&flagServeProfile, "profile", "", "Agent profile: cautious, normal, aggressive")
}

func runServe(_ *cobra.Command, _ []string) error {
	expertCfg, err := loadExpertConfig(flagServeConfig, flagServeProfile)
	if err != nil {
		return err
	}
	simCfg, err := config.LoadSim(flagServeSimCfg)
	if err != nil {
		return err
	}

	runCfg := buildRunConfig(flagSeed, expertCfg.Durations.ActFreq, 0)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Expert:      expertCfg,
		Sim:         simCfg,
		Run:         runCfg,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		return err
	}
	return nil
}
