package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finsaver configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Baseline   BaselineConfig   `toml:"baseline"`
	Watch      WatchConfig      `toml:"watch"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency  string `toml:"currency"`
	DataDir   string `toml:"data_dir,omitempty"`
	ExportDir string `toml:"export_dir,omitempty"`
}

// BaselineConfig holds the default financial baseline used when the
// workspace has none saved.
type BaselineConfig struct {
	BankBalance    float64 `toml:"bank_balance"`
	MonthlyRevenue float64 `toml:"monthly_revenue"`
	MonthlyCosts   float64 `toml:"monthly_costs"`
}

// WatchConfig holds the watch service settings.
type WatchConfig struct {
	Addr            string  `toml:"addr"`
	AlertSeconds    int     `toml:"alert_seconds"`
	InsightSeconds  int     `toml:"insight_seconds"`
	JitterAmplitude float64 `toml:"jitter_amplitude,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "₹",
		},
		Baseline: BaselineConfig{
			BankBalance:    5000000,
			MonthlyRevenue: 800000,
			MonthlyCosts:   1200000,
		},
		Watch: WatchConfig{
			Addr:           "127.0.0.1:7468",
			AlertSeconds:   5,
			InsightSeconds: 15,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finsaver")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finsaver")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the workspace database. The
// configured override wins; otherwise it sits next to the config file.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return ConfigDir()
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
