/*
Package fileio provides whole-file loading and saving with trace logging,
a pluggable file access capability, and automatic retry logic for NFS
stale file handle errors.

# Purpose

The four core helpers read or write an entire file in one call:

  - LoadFileData: read a binary file into a byte slice
  - SaveFileData: write a byte slice as a binary file
  - LoadFileText: read a text file into a string (line endings normalized)
  - SaveFileText: write a string as a text file

Every helper reports its outcome on the trace log in a fixed message
format and additionally returns an explicit error, so callers can branch
without parsing log output.

# File access capability

All helpers open files through the package's FileSystem capability
rather than calling the operating system directly. The default
capability is the real filesystem; platforms that package assets into a
read-only container install a replacement once at startup:

	fileio.SetFileSystem(bundle)

After that call every open in the library is transparently redirected.
Tests install lightweight fakes the same way.

# Retry behavior

The default capability wraps opens and stats with retry logic for NFS
ESTALE errors (errno 116), with exponential backoff:

  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Only stale handle errors trigger retries. All other errors fail
immediately.

# Instrumentation

Operation outcomes, payload sizes and retry activity are reported to an
Observer. The implementation lives in a metrics package so this package
stays free of a Prometheus dependency; without an installed observer
recording is a no-op.
*/
package fileio
