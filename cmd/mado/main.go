package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/mado-cli/internal/app"
	"github.com/yourusername/mado-cli/internal/backend"
	"github.com/yourusername/mado-cli/internal/client"
	madoConfig "github.com/yourusername/mado-cli/internal/config"
	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/output"
)

var (
	socketPath  string
	timeout     time.Duration
	jsonOutput  bool
	noColor     bool
	debugMode   bool
	configPath  string
	backendName string
	targetPID   int
	displaysArg string

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "mado",
	Short: "Move, align and resize the focused window from the terminal",
	Long: `Mado reads the focused window's frame relative to the monitor it sits on
and moves, aligns, maximizes or resizes it within that monitor's usable area.

Frames are shown in monitor-local coordinates: the origin is the bottom-left
corner of the owning monitor and Y grows upward.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// pingCmd tests host connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the accessibility host",
	Long:  `Sends a ping request to the host to test connectivity and response time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		if b.Client == nil {
			return fmt.Errorf("ping requires the %s backend (using %s)", backend.Remote, b.Name)
		}

		start := time.Now()
		result, err := b.Client.Ping(context.Background())
		elapsed := time.Since(start)

		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}

		if jsonOutput {
			return printJSON(result)
		}

		successColor.Println("✓ Pong received")
		fmt.Printf("Response time: %v\n", elapsed)
		return nil
	},
}

// infoCmd describes the backend in use
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show backend and host information",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, cfg, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		if b.Client == nil {
			if jsonOutput {
				return printJSON(map[string]string{"backend": b.Name})
			}
			keyColor.Print("Backend: ")
			fmt.Println(b.Name)
			return nil
		}

		info, err := b.Client.GetServerInfo(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get host info: %w", err)
		}

		if jsonOutput {
			return printJSON(info)
		}

		keyColor.Print("Backend: ")
		fmt.Printf("%s (%s)\n", b.Name, cfg.Host.Socket)
		keyColor.Print("Host: ")
		fmt.Printf("%s %s\n", info.Name, info.Version)
		keyColor.Print("Platform: ")
		fmt.Println(info.Platform)
		keyColor.Print("Protocol: ")
		fmt.Println(info.ProtocolVersion)
		keyColor.Print("Accessibility: ")
		if info.AXTrusted {
			successColor.Println("trusted")
		} else {
			errorColor.Println("not trusted")
		}
		return nil
	},
}

// displaysCmd lists monitors
var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List displays, primary first",
	Long: `Lists every display with its full frame and usable frame in global
coordinates (origin at the bottom-left of the primary display, Y up).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		monitors, err := b.Topology.Monitors(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list displays: %w", err)
		}

		if jsonOutput {
			return printJSON(monitors)
		}
		if len(monitors) == 0 {
			fmt.Println("No displays found")
			return nil
		}
		output.PrintDisplaysTable(os.Stdout, monitors)
		return nil
	},
}

// Show command flags
var (
	showVisual  bool
	showASCII   bool
	showUnicode bool
	showWidth   int
	showHeight  int
)

// showCmd prints the target window
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the target window's frame and monitor",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.State) error {
			snap := s.Refresh(ctx)

			if jsonOutput {
				return printJSON(snap)
			}
			if showVisual {
				output.PrintVisualization(os.Stdout, snap, getVisualizationOptions())
				return nil
			}
			output.PrintSnapshot(os.Stdout, snap)
			return nil
		})
	},
}

// watchInterval overrides the configured poll interval
var watchInterval time.Duration

// watchCmd prints the target window's frame whenever it changes
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the window frame whenever it changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.State) error {
			ctx, stop := signalContext(ctx)
			defer stop()

			var last *app.Snapshot
			return s.Watch(ctx, watchInterval, func(snap app.Snapshot) {
				if last != nil && sameSnapshot(*last, snap) {
					return
				}
				last = &snap

				if jsonOutput {
					data, _ := json.Marshal(snap)
					fmt.Println(string(data))
					return
				}
				printSnapshotLine(snap)
			})
		})
	},
}

func sameSnapshot(a, b app.Snapshot) bool {
	return a.Available == b.Available &&
		a.Frame == b.Frame &&
		a.Monitor.ID == b.Monitor.ID &&
		a.AppTitle == b.AppTitle &&
		a.Error == b.Error
}

func printSnapshotLine(snap app.Snapshot) {
	ts := time.Now().Format("15:04:05.000")
	if !snap.Available {
		fmt.Printf("%s  %s\n", ts, snap.Title())
		return
	}
	fmt.Printf("%s  ", ts)
	keyColor.Print(snap.Title())
	fmt.Printf("  %s  ", snap.Frame)
	infoColor.Println(snap.Monitor.Name)
}

// MARK: - Config Commands

// madoConfigCmd is the parent command for config subcommands
var madoConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

// configShowCmd shows current config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := madoConfig.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if jsonOutput {
			return printJSON(cfg)
		}

		s := cfg.Settings
		keyColor.Print("Steps: ")
		fmt.Printf("%g small, %g large\n", s.SmallStep, s.LargeStep)
		keyColor.Print("Poll interval: ")
		fmt.Println(cfg.GetPollInterval())
		keyColor.Print("Alignment: ")
		fmt.Println(cfg.GetAlignMode())
		keyColor.Print("Backend: ")
		fmt.Println(s.Backend)
		keyColor.Print("Host: ")
		fmt.Printf("%s (timeout %s)\n", cfg.Host.Socket, cfg.GetTimeout())
		fmt.Println()
		output.PrintPresetsTable(os.Stdout, cfg.Presets)
		return nil
	},
}

// configValidateCmd validates config file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := madoConfig.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		successColor.Println("✓ Configuration is valid")
		fmt.Printf("  Presets: %d\n", len(cfg.Presets))
		fmt.Printf("  Alignment: %s\n", cfg.GetAlignMode())
		return nil
	},
}

var configInitForce bool

// configInitCmd creates default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = madoConfig.GetConfigPath()
		}

		if err := madoConfig.WriteDefault(path, configInitForce); err != nil {
			return err
		}

		successColor.Printf("✓ Created default config at: %s\n", path)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", client.DefaultSocketPath, "Unix socket path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/mado/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "Backend: remote or x11 (default from config)")
	rootCmd.PersistentFlags().IntVar(&targetPID, "pid", 0, "Target application pid (default: frontmost)")
	rootCmd.PersistentFlags().StringVar(&displaysArg, "displays", "", "JSON file with a fixed monitor list, replacing the backend's displays")

	// Add subcommands
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(displaysCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(centerCmd)
	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(maximizeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(snapCmd)
	rootCmd.AddCommand(interactiveCmd)

	frameCmd.AddCommand(frameGetCmd)
	frameCmd.AddCommand(frameSetCmd)

	// Add config commands
	rootCmd.AddCommand(madoConfigCmd)
	madoConfigCmd.AddCommand(configShowCmd)
	madoConfigCmd.AddCommand(configValidateCmd)
	madoConfigCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	// Show flags
	showCmd.Flags().BoolVar(&showVisual, "visual", false, "Draw the monitor layout with the window")
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Force ASCII mode (no Unicode)")
	showCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Force Unicode mode")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Override terminal width")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Override terminal height")

	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Poll interval (default from config)")

	maximizeCmd.Flags().BoolVar(&maximizeHorizontal, "horizontal", false, "Only fill the usable width")
	maximizeCmd.Flags().BoolVar(&maximizeVertical, "vertical", false, "Only fill the usable height")
	maximizeCmd.MarkFlagsMutuallyExclusive("horizontal", "vertical")

	moveCmd.Flags().BoolVar(&stepLarge, "large", false, "Use the large step")
	resizeCmd.Flags().BoolVar(&stepLarge, "large", false, "Use the large step")

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging
	logging.Init()
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		logging.Close()
		os.Exit(1)
	}
}

// Helper functions

// loadConfig loads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*madoConfig.Config, error) {
	cfg, err := madoConfig.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("socket") {
		cfg.Host.Socket = socketPath
	}
	if flags.Changed("timeout") {
		cfg.Host.Timeout = timeout.String()
	}
	if flags.Changed("backend") {
		cfg.Settings.Backend = backendName
	}
	return cfg, nil
}

// openBackend loads config and opens the configured backend
func openBackend(cmd *cobra.Command) (*backend.Backend, *madoConfig.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	b, err := backend.Open(backend.Options{
		Name:    cfg.Settings.Backend,
		Socket:  cfg.Host.Socket,
		Timeout: cfg.GetTimeout(),
	})
	if err != nil {
		return nil, nil, err
	}

	if displaysArg != "" {
		topo, err := loadDisplays(displaysArg)
		if err != nil {
			b.Close()
			return nil, nil, err
		}
		b.Topology = topo
	}
	return b, cfg, nil
}

// loadDisplays reads a monitor list written by "mado displays --json"
func loadDisplays(path string) (display.Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read displays file: %w", err)
	}

	var monitors []display.Monitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return nil, fmt.Errorf("failed to parse displays file: %w", err)
	}
	logging.Debug().Str("path", path).Int("count", len(monitors)).Msg("using static displays")
	return display.Static(display.PrimaryFirst(monitors)), nil
}

// withSession opens a backend and session, targets --pid when given, and
// runs fn
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *app.State) error) error {
	b, cfg, err := openBackend(cmd)
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := context.Background()
	s := app.New(b.Service, b.Topology, cfg)
	if targetPID != 0 {
		if err := s.Open(ctx, targetPID); err != nil {
			return err
		}
	}
	return fn(ctx, s)
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

func printSuccess(msg string) {
	if jsonOutput {
		return
	}
	successColor.Printf("✓ %s\n", msg)
}

// getVisualizationOptions builds options from flags
func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()

	if showASCII {
		opts.UseUnicode = false
	}
	if showUnicode {
		opts.UseUnicode = true
	}
	if showWidth > 0 {
		opts.MaxWidth = showWidth
	}
	if showHeight > 0 {
		opts.MaxHeight = showHeight
	}

	return opts
}
