package app

// Config is the raw set of CLI/config-file inputs, before string values are
// parsed into their mode enums and cross-flag rules are checked. It mirrors
// dashboard.go's mapstructure-tagged Config, generalized from a fixed
// refresh_interval/cpu_threshold pair to the full flag surface this
// application exposes.
type Config struct {
	RefreshMS  int    `mapstructure:"refresh_ms"`
	BufferSize int    `mapstructure:"buffer_size"`
	View       string `mapstructure:"view"`
	CPU        string `mapstructure:"cpu"`
	GPU        string `mapstructure:"gpu"`
	Swap       string `mapstructure:"swap"`
	Network    string `mapstructure:"network"`
	Disk       string `mapstructure:"disk"`
	Power      string `mapstructure:"power"`
	Memory     string `mapstructure:"memory"`

	CSV bool `mapstructure:"csv"` // stream ticks as CSV to stdout instead of drawing the TUI

	HTTPHost       string `mapstructure:"http_host"`
	HTTPPort       int    `mapstructure:"http_port"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Defaults returns the configuration used when no flag or config key
// overrides a value.
func Defaults() Config {
	return Config{
		RefreshMS:  1000,
		BufferSize: 500,
		View:       "one",
		CPU:        "all",
		GPU:        "collapsed",
		Swap:       "show",
		Network:    "show",
		Disk:       "show",
		Power:      "combined",
		Memory:     "percent",
		CSV:        false,
		HTTPHost:   "localhost",
	}
}
