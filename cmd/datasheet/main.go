package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"motor-datasheet/internal/assembler"
	"motor-datasheet/internal/config"
	"motor-datasheet/internal/logger"
	"motor-datasheet/internal/model"
	"motor-datasheet/internal/server"
)

const (
	appName    = "Motor Datasheet"
	appVersion = "1.0.0"
	appDesc    = "Datasheet generator for motors and gearmotors"
)

var (
	configPath string
	verbose    bool
	outputDir  string
	noFiles    bool
	addr       string

	// generate flags, named like the form fields
	selection = map[string]*string{}
	options   = map[string]*bool{}
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "datasheet",
		Short:         appDesc,
		Long:          fmt.Sprintf("%s v%s\n%s", appName, appVersion, appDesc),
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	root.PersistentFlags().StringVar(&outputDir, "output", "", "Override output directory from config")

	root.AddCommand(newGenerateCmd(), newServeCmd(), newOptionsCmd())
	return root
}

// setup loads the configuration and starts the logger. The returned func
// closes the logger.
func setup() (*config.Config, func(), error) {
	printBanner()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if outputDir != "" {
		if err := cfg.SetOutputDir(outputDir); err != nil {
			return nil, nil, err
		}
	}
	if noFiles {
		cfg.Output.WriteFiles = false
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, nil, err
	}

	logPath := filepath.Join(cfg.Output.Dir, "datasheet.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if verbose {
		cfg.Print()
	}
	if err := cfg.Validate(); err != nil {
		logger.Close()
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logger.Close, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one datasheet",
		Example: `  datasheet generate --family KSY --variant HD --frame_size 2 --poles 4 \
    --package_length 6 --rated_speed 40 --encoder R4 --connector --direct_pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := url.Values{}
			for name, v := range selection {
				form.Set(name, *v)
			}
			for name, v := range options {
				if *v {
					form.Set(name, "on")
				}
			}
			sel, err := server.ParseSelection(form)
			if err != nil {
				return err
			}

			cfg, closeLog, err := setup()
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := assembler.New(cfg, assembler.WithProgress(os.Stdout)).Generate(ctx, sel)
			if err != nil {
				logger.Error("Generation failed: %v", err)
				return err
			}
			for _, path := range res.Files {
				logger.Info("  → %s", path)
			}
			logger.Info("✅ Datasheet complete. Check [%s] directory.", cfg.Output.Dir)
			return nil
		},
	}

	defaults := model.Options()
	textFlags := []struct {
		name, value, usage string
	}{
		{"family", string(defaults.Families[0]), "Motor family (KSY, KSD, KSG, KTY)"},
		{"variant", defaults.Variants[0], "Variant tag"},
		{"frame_size", "", "Frame size (Baugröße)"},
		{"poles", "", "Pole count"},
		{"package_length", "", "Package length in cm"},
		{"rated_speed", "", "Rated speed in 100/min"},
		{"protection_class", defaults.ProtectionClass[0], "Protection class"},
		{"duty_type", defaults.DutyTypes[0], "Duty type"},
		{"insulation", defaults.InsulationClass[0], "Insulation class"},
		{"encoder", string(defaults.Encoders[0]), "Rotor position encoder (R4, Rx)"},
		{"gear_ratio", "", "Gear ratio, required with --gearbox"},
	}
	for _, f := range textFlags {
		selection[f.name] = cmd.Flags().String(f.name, f.value, f.usage)
	}

	boolFlags := []struct {
		name, usage string
	}{
		{"brake", "Motor with brake"},
		{"b5", "B5 flange instead of B14"},
		{"gearbox", "Gearmotor"},
		{"key_way", "Shaft with key way"},
		{"block_flange", "Block flange"},
		{"connector", "Connector instead of cable"},
		{"direct_pdf", "Render the PDF and merge the drawing"},
	}
	for _, f := range boolFlags {
		options[f.name] = cmd.Flags().Bool(f.name, false, f.usage)
	}
	cmd.Flags().BoolVar(&noFiles, "no-files", false, "Do not write to the output directory")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the datasheet form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := setup()
			if err != nil {
				return err
			}
			defer closeLog()

			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(assembler.New(cfg))
			if err := server.ListenAndServe(ctx, cfg.Server.Addr, srv); err != nil {
				logger.Error("Server stopped: %v", err)
				return err
			}
			logger.Info("Server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Override listen address from config")
	return cmd
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the selectable form values as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(model.Options())
		},
	}
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                  MOTOR DATASHEET v1.0.0                   ║
║          Datasheets for Motors and Gearmotors             ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
