// Package config handles configuration loading, validation, and management
// for rhythmd.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"rhythmd/internal/rhythm"
)

// Config holds the complete rhythmd configuration.
type Config struct {
	// Thresholds tune the analysis pipeline.
	Thresholds ThresholdConfig `toml:"thresholds" json:"thresholds" yaml:"thresholds"`

	// Storage configuration for the session database.
	Storage StorageConfig `toml:"storage" json:"storage" yaml:"storage"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`

	// mu protects concurrent access to the config.
	mu sync.RWMutex `toml:"-" json:"-" yaml:"-"`
}

// ThresholdConfig holds the tunable analysis thresholds. All durations are
// in seconds.
type ThresholdConfig struct {
	// ShortPauseMin is the lower bound of a short pause.
	ShortPauseMin float64 `toml:"short_pause_min" json:"short_pause_min" yaml:"short_pause_min"`

	// ShortPauseMax is the exclusive upper bound of a short pause.
	ShortPauseMax float64 `toml:"short_pause_max" json:"short_pause_max" yaml:"short_pause_max"`

	// MediumPauseMin is the lower bound of a medium pause.
	MediumPauseMin float64 `toml:"medium_pause_min" json:"medium_pause_min" yaml:"medium_pause_min"`

	// MediumPauseMax is the exclusive upper bound of a medium pause.
	MediumPauseMax float64 `toml:"medium_pause_max" json:"medium_pause_max" yaml:"medium_pause_max"`

	// LongPauseMin is the lower bound of a long pause.
	LongPauseMin float64 `toml:"long_pause_min" json:"long_pause_min" yaml:"long_pause_min"`

	// HesitationMin is the minimum interval counted as a hesitation.
	HesitationMin float64 `toml:"hesitation_min" json:"hesitation_min" yaml:"hesitation_min"`

	// BurstIntervalMax is the exclusive upper bound of an interval that
	// continues a burst.
	BurstIntervalMax float64 `toml:"burst_interval_max" json:"burst_interval_max" yaml:"burst_interval_max"`

	// BurstMinLength is the minimum number of keystrokes in a burst.
	BurstMinLength int `toml:"burst_min_length" json:"burst_min_length" yaml:"burst_min_length"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	// Path is the path to the session database file.
	Path string `toml:"path" json:"path" yaml:"path"`

	// RetainDays is how long to keep stored profiles. Zero disables pruning.
	RetainDays int `toml:"retain_days" json:"retain_days" yaml:"retain_days"`

	// BusyTimeoutMs is the SQLite busy timeout in milliseconds.
	BusyTimeoutMs int `toml:"busy_timeout_ms" json:"busy_timeout_ms" yaml:"busy_timeout_ms"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is the log output: "stdout", "stderr", "file", or "both".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the path to the log file (when Output includes "file").
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`

	// MaxSizeMB is the maximum log file size before rotation.
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated log files to keep.
	MaxBackups int `toml:"max_backups" json:"max_backups" yaml:"max_backups"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	dir := DataDir()
	th := rhythm.DefaultThresholds()

	return &Config{
		Thresholds: ThresholdConfig{
			ShortPauseMin:    th.ShortPauseMin,
			ShortPauseMax:    th.ShortPauseMax,
			MediumPauseMin:   th.MediumPauseMin,
			MediumPauseMax:   th.MediumPauseMax,
			LongPauseMin:     th.LongPauseMin,
			HesitationMin:    th.HesitationMin,
			BurstIntervalMax: th.BurstIntervalMax,
			BurstMinLength:   th.BurstMinLength,
		},
		Storage: StorageConfig{
			Path:          filepath.Join(dir, "sessions.db"),
			RetainDays:    90,
			BusyTimeoutMs: 5000,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			FilePath:   filepath.Join(dir, "rhythmd.log"),
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}

// RhythmThresholds converts the configured thresholds into the form the
// analysis pipeline consumes.
func (c *Config) RhythmThresholds() rhythm.Thresholds {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return rhythm.Thresholds{
		ShortPauseMin:    c.Thresholds.ShortPauseMin,
		ShortPauseMax:    c.Thresholds.ShortPauseMax,
		MediumPauseMin:   c.Thresholds.MediumPauseMin,
		MediumPauseMax:   c.Thresholds.MediumPauseMax,
		LongPauseMin:     c.Thresholds.LongPauseMin,
		HesitationMin:    c.Thresholds.HesitationMin,
		BurstIntervalMax: c.Thresholds.BurstIntervalMax,
		BurstMinLength:   c.Thresholds.BurstMinLength,
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns default configuration.
// Supports TOML, JSON, and YAML formats based on file extension.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// loadConfigFromFile reads and parses a config file based on its extension.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()

	ext := filepath.Ext(path)
	switch ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := autoDetectAndParse(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	return cfg, nil
}

// autoDetectAndParse attempts to parse the config in multiple formats.
func autoDetectAndParse(data []byte, cfg *Config) error {
	if _, err := toml.Decode(string(data), cfg); err == nil {
		return nil
	}
	if err := json.Unmarshal(data, cfg); err == nil {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err == nil {
		return nil
	}
	return fmt.Errorf("unable to parse config file (tried TOML, JSON, YAML)")
}

// ApplyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables are prefixed with RHYTHMD_.
func (c *Config) ApplyEnvOverrides() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v := os.Getenv("RHYTHMD_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("RHYTHMD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RHYTHMD_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("RHYTHMD_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}
	if v := os.Getenv("RHYTHMD_HESITATION_MIN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Thresholds.HesitationMin = f
		}
	}
	if v := os.Getenv("RHYTHMD_BURST_INTERVAL_MAX"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Thresholds.BurstIntervalMax = f
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// EnsureDirectories creates the directories the daemon writes to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Storage.Path),
		filepath.Dir(c.Logging.FilePath),
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	clone := &Config{
		Thresholds: c.Thresholds,
		Storage:    c.Storage,
		Logging:    c.Logging,
	}
	return clone
}

// SaveConfig writes the configuration to the given path as TOML.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// LoadOrCreate loads the configuration from the specified path, creating a
// default configuration file if it doesn't exist. The boolean reports
// whether a new file was created.
func LoadOrCreate(path string) (*Config, bool, error) {
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			return nil, false, fmt.Errorf("create default config: %w", err)
		}
		return cfg, true, nil
	}

	loader := NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		return nil, false, err
	}
	return cfg, false, nil
}

// DataDir returns the base rhythmd data directory.
// Uses platform-specific paths or the RHYTHMD_DATA_DIR environment override.
func DataDir() string {
	if envDir := os.Getenv("RHYTHMD_DATA_DIR"); envDir != "" {
		return envDir
	}
	return platformDataDir()
}

func platformDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "rhythmd")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "rhythmd")
		}
		return filepath.Join(home, "AppData", "Roaming", "rhythmd")
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "rhythmd")
		}
		return filepath.Join(home, ".local", "share", "rhythmd")
	}
}
