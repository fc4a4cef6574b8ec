package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/app"
)

// flagConfig holds settings overridable from the command line or a config
// file, mirroring dashboard.go's mapstructure-tagged Config generalized
// from a fixed refresh_interval/cpu_threshold pair to the full flag surface
// this dashboard exposes.
var flagConfig = app.Defaults()
var configFile string

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&flagConfig.RefreshMS, "refresh_ms", flagConfig.RefreshMS, "milliseconds between samples")
	flags.IntVar(&flagConfig.BufferSize, "buffer_size", flagConfig.BufferSize, "samples retained per metric")
	flags.StringVar(&flagConfig.View, "view", flagConfig.View, "ruler density: off, one or all")
	flags.StringVar(&flagConfig.CPU, "cpu", flagConfig.CPU, "cpu grouping: all, by_cluster or by_core")
	flags.StringVar(&flagConfig.GPU, "gpu", flagConfig.GPU, "gpu detail: collapsed, load_only or load_and_vram")
	flags.StringVar(&flagConfig.Swap, "swap", flagConfig.Swap, "swap visibility: show or hide")
	flags.StringVar(&flagConfig.Network, "network", flagConfig.Network, "network visibility: show or hide")
	flags.StringVar(&flagConfig.Disk, "disk", flagConfig.Disk, "disk visibility: show or hide")
	flags.StringVar(&flagConfig.Power, "power", flagConfig.Power, "power detail: combined, all or off")
	flags.StringVar(&flagConfig.Memory, "memory", flagConfig.Memory, "memory detail: percent or all")
	flags.BoolVar(&flagConfig.CSV, "csv", flagConfig.CSV, "stream ticks as CSV to stdout instead of drawing the TUI")
	flags.StringVar(&flagConfig.HTTPHost, "http_host", flagConfig.HTTPHost, "bind host for --http_port")
	flags.IntVar(&flagConfig.HTTPPort, "http_port", flagConfig.HTTPPort, "serve metrics as JSON on this port instead of drawing the TUI")
	flags.IntVar(&flagConfig.PrometheusPort, "prometheus_port", flagConfig.PrometheusPort, "serve metrics for Prometheus scraping on this port instead of drawing the TUI")
	flags.StringVar(&configFile, "config", "", "path to a YAML/JSON/TOML config file overriding these defaults")
}

// runDashboard loads an optional config file over the flag defaults,
// resolves the result, and runs the assembled App until an interrupt or a
// fatal error. Config errors are returned as-is so Execute can map them to
// a distinct exit status.
func runDashboard(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		if err := loadConfigFile(cmd, configFile); err != nil {
			return err
		}
	}

	resolved, err := app.Resolve(flagConfig)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("app: init logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	a, err := app.New(resolved, sugar)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return a.Run(ctx)
}

// loadConfigFile merges values from path over flagConfig, matching
// dashboard.go's loadConfig/viper.Unmarshal pattern. An explicitly passed
// --refresh_ms or --buffer_size still wins over the file, mirroring
// dashboard.go's own special-cased "if refreshInterval flag is set" rule;
// for every other flag, a value present in the file replaces the
// command-line value.
func loadConfigFile(cmd *cobra.Command, path string) error {
	explicit := app.Config{}
	flags := cmd.Flags()
	if flags.Changed("refresh_ms") {
		explicit.RefreshMS = flagConfig.RefreshMS
	}
	if flags.Changed("buffer_size") {
		explicit.BufferSize = flagConfig.BufferSize
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("app: read config file %q: %w", path, err)
	}
	if err := v.Unmarshal(&flagConfig); err != nil {
		return fmt.Errorf("app: parse config file %q: %w", path, err)
	}

	if explicit.RefreshMS != 0 {
		flagConfig.RefreshMS = explicit.RefreshMS
	}
	if explicit.BufferSize != 0 {
		flagConfig.BufferSize = explicit.BufferSize
	}
	return nil
}
