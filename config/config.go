package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	stripjsoncomments "github.com/trapcodeio/go-strip-json-comments"

	"github.com/noloitering/raylib/assetfs"
	"github.com/noloitering/raylib/fileio"
	"github.com/noloitering/raylib/internal/metrics"
	"github.com/noloitering/raylib/tracelog"
)

// Config holds all library configuration
type Config struct {
	LogLevel     tracelog.Level
	LogExitLevel tracelog.Level
	DataDir      string
	BundlePath   string
	Retry        fileio.RetryConfig
}

// fileConfig is the on-disk JSON shape. Empty fields leave the current
// value untouched.
type fileConfig struct {
	LogLevel     string `json:"logLevel"`
	LogExitLevel string `json:"logExitLevel"`
	DataDir      string `json:"dataDir"`
	BundlePath   string `json:"bundlePath"`
	MaxRetries   *int   `json:"maxRetries"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:     tracelog.LevelInfo,
		LogExitLevel: tracelog.LevelError,
		Retry:        fileio.DefaultRetryConfig(),
	}
}

// Load builds configuration from defaults and environment variables. When
// CONFIG_FILE names a file, it is read first and the environment overrides
// it.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.mergeEnv()
	cfg.logSettings()
	return cfg, nil
}

// LoadFile builds configuration from defaults and the named JSON file.
// Comments are allowed in the file. Environment variables override file
// values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	cfg.mergeEnv()
	cfg.logSettings()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	plain := stripjsoncomments.Strip(string(data))
	if err := jsoniter.UnmarshalFromString(plain, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.LogLevel != "" {
		c.LogLevel = parseLevel("logLevel", fc.LogLevel, c.LogLevel)
	}
	if fc.LogExitLevel != "" {
		c.LogExitLevel = parseLevel("logExitLevel", fc.LogExitLevel, c.LogExitLevel)
	}
	if fc.DataDir != "" {
		c.DataDir = fc.DataDir
	}
	if fc.BundlePath != "" {
		c.BundlePath = fc.BundlePath
	}
	if fc.MaxRetries != nil {
		c.Retry.MaxRetries = *fc.MaxRetries
	}
	return nil
}

func (c *Config) mergeEnv() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = parseLevel("LOG_LEVEL", v, c.LogLevel)
	}
	if v := os.Getenv("LOG_EXIT_LEVEL"); v != "" {
		c.LogExitLevel = parseLevel("LOG_EXIT_LEVEL", v, c.LogExitLevel)
	}
	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	c.BundlePath = getEnv("BUNDLE_PATH", c.BundlePath)
	c.Retry.MaxRetries = getEnvInt("FILEIO_MAX_RETRIES", c.Retry.MaxRetries)
}

func (c *Config) logSettings() {
	tracelog.Debug("CONFIG: Log level: %s (exit at %s)", c.LogLevel, c.LogExitLevel)
	if c.DataDir != "" {
		tracelog.Debug("CONFIG: Data directory: %s", c.DataDir)
	}
	if c.BundlePath != "" {
		tracelog.Debug("CONFIG: Asset bundle: %s", c.BundlePath)
	}
	tracelog.Debug("CONFIG: Stale handle retries: %d", c.Retry.MaxRetries)
}

// Apply pushes the configuration into the library packages. Call this once
// at startup, before other goroutines touch files.
//
// When BundlePath is set the bundle is opened and installed as the file
// access capability, with DataDir receiving writes. With only DataDir set,
// file access is rooted there instead. The bundle stays open for the life
// of the process.
func (c *Config) Apply() error {
	c.ApplyLogging()
	fileio.SetRetryConfig(c.Retry)

	volumes := make(map[string]string)
	if c.DataDir != "" {
		volumes["data"] = c.DataDir
	}
	if c.BundlePath != "" {
		volumes["bundle"] = filepath.Dir(c.BundlePath)
	}
	if len(volumes) > 0 {
		fileio.SetDefaultVolumeResolver(fileio.NewVolumeResolver(volumes))
	}

	if c.DataDir != "" {
		if err := ensureDirectory(c.DataDir); err != nil {
			return fmt.Errorf("data directory error: %w", err)
		}
		if err := testWriteAccess(c.DataDir); err != nil {
			return fmt.Errorf("data directory is not writable: %w", err)
		}
		tracelog.Debug("CONFIG: [OK] Data directory is writable")
	}

	switch {
	case c.BundlePath != "":
		b, err := assetfs.InitBundle(c.BundlePath, c.DataDir)
		if err != nil {
			return fmt.Errorf("asset bundle error: %w", err)
		}
		startBundleCollector(b)
		tracelog.Debug("CONFIG: [OK] Asset bundle installed")
	case c.DataDir != "":
		assetfs.Install(assetfs.NewDirFS(c.DataDir))
		tracelog.Debug("CONFIG: [OK] File access rooted at data directory")
	}

	return nil
}

// ApplyLogging sets only the trace log thresholds. Safe to call on a
// running process, which is what Watch does on reload.
func (c *Config) ApplyLogging() {
	tracelog.SetLevel(c.LogLevel)
	tracelog.SetExitLevel(c.LogExitLevel)
}

// bundleCollector keeps the bundle gauges current for the installed
// bundle. Replaced when Apply installs a new one.
var bundleCollector *metrics.Collector

func startBundleCollector(b *assetfs.Bundle) {
	if bundleCollector != nil {
		bundleCollector.Stop()
	}
	bundleCollector = metrics.NewCollector(metrics.NewBundleStatsProvider(b), time.Minute)
	bundleCollector.Start()
}

// Helper functions

func parseLevel(key, value string, fallback tracelog.Level) tracelog.Level {
	level, err := tracelog.ParseLevel(value)
	if err != nil {
		tracelog.Warning("CONFIG: Invalid level for %s: %q, using %s", key, value, fallback)
		return fallback
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		tracelog.Warning("CONFIG: Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func ensureDirectory(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		tracelog.Debug("CONFIG: [OK] Created directory: %s", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}
	return nil
}

func testWriteAccess(dir string) error {
	testFile := filepath.Join(dir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o644); err != nil {
		return err
	}
	if err := os.Remove(testFile); err != nil {
		tracelog.Warning("CONFIG: Failed to remove write test file %s: %v", testFile, err)
		// Write access itself was confirmed
	}
	return nil
}
