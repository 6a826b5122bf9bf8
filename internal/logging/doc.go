// Package logging provides structured logging with per-module log level configuration.
//
// # Overview
//
// The logging system uses Go's slog package with automatic output routing:
//   - Logs to the systemd journal when available (Linux systems with journald)
//   - Logs to stdout as text or JSON
//   - Logs to both when both are available
//
// # Usage
//
// Initialize the logging system once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",      // Global log level: debug, info, warn, error
//		Format: "text",      // Output format: text or json
//		Modules: map[string]string{
//			"recorder": "debug",  // Per-module overrides
//			"api":      "warn",
//		},
//	})
//
// Get a logger for your module:
//
//	logger := logging.GetLogger("recorder")
//	logger.Info("Recording started", "output", path)
//
// Add contextual attributes:
//
//	logger := logging.GetLogger("recorder").With("recording_id", id)
//	logger.Info("Recording settled")  // Includes recording_id in all logs
//
// Loggers created before Initialize pick up the configured levels and format
// when Initialize runs.
//
// # Viewing Logs
//
// When running as a systemd service or on a system with journald:
//
//	journalctl -t recordscreen        # All recordscreen logs
//	journalctl -t recordscreen -f     # Follow live
//	journalctl -t recordscreen -p err # Errors only
package logging
