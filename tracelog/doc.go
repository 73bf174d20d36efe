// Package tracelog provides the leveled trace logging facility used across
// the library.
//
// Messages pass through a single Log call guarded by two thresholds: a
// minimum level below which messages are dropped, and an exit level at or
// above which the process terminates once the message has been written. An
// application can take over output entirely by installing a Callback.
//
// It supports the following message levels:
//   - TRACE: Very verbose internal tracing
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARNING: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Unrecoverable errors
//
// The defaults emit INFO and above and exit on ERROR and above. When the
// process runs under the systemd journal, messages carry syslog priority
// prefixes instead of text labels. Building with the notracelog tag compiles
// every Log call down to a no-op.
package tracelog
