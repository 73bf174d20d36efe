// Package config loads library configuration from the environment and from
// an optional JSON file, and pushes it into the tracelog, fileio, and
// assetfs packages.
//
// # Environment Variables
//
// Configuration is loaded from environment variables via [Load]. The
// following variables are supported:
//
//   - LOG_LEVEL: Trace log threshold - all, trace, debug, info, warning, error, fatal, none (default: info)
//   - LOG_EXIT_LEVEL: Severity at or above which a logged message terminates the process (default: error)
//   - DATA_DIR: Writable data directory for saves and generated files (default: none)
//   - BUNDLE_PATH: Path to a packaged asset bundle to serve reads from (default: none)
//   - FILEIO_MAX_RETRIES: Retry attempts for stale file handles on network mounts (default: 3)
//   - CONFIG_FILE: Optional JSON configuration file read before the environment
//
// # Configuration File
//
// [LoadFile] reads a JSON file in which // and /* */ comments are allowed:
//
//	{
//	    // raise this to "debug" when chasing asset problems
//	    "logLevel": "info",
//	    "dataDir": "/srv/game/data",
//	    "bundlePath": "/srv/game/assets.bundle",
//	    "maxRetries": 3
//	}
//
// Environment variables always win over file values, so a deployment can
// override a shipped file without editing it.
//
// # Applying
//
// [Config.Apply] is called once at startup. It sets the trace log
// thresholds, configures stale handle retries, seeds the volume resolver
// used for metric labels, and installs the asset bundle (or a directory
// root) as the file access capability.
//
// # Runtime Reload
//
// [Watch] re-reads the configuration file whenever it changes on disk, so
// log levels can be raised or lowered on a running process:
//
//	stop, err := config.Watch(path, func(c *config.Config) {
//	    c.ApplyLogging()
//	})
//	if err != nil {
//	    tracelog.Warning("CONFIG: [%s] Watch failed: %v", path, err)
//	}
//	defer stop()
package config
