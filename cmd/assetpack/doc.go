// Command assetpack builds, inspects, and verifies asset bundles.
//
// It supports the following operations:
//   - pack: Pack a directory tree into a bundle
//   - list: List bundle entries with their sizes
//   - extract: Extract every entry into a directory
//   - verify: Check entry integrity against the container checksums
//
// Usage:
//
//	assetpack <command> [arguments]
//
// Commands:
//
//	pack <dir> <bundle>     Pack the files under <dir> into <bundle>.
//	                        Entry names are slash separated and relative
//	                        to <dir>; entries are deflate compressed.
//
//	list <bundle>           Print every packaged entry with its
//	                        uncompressed size.
//
//	extract <bundle> <dir>  Unpack every entry into <dir>, creating
//	                        directories as needed. Entries with paths
//	                        that escape <dir> are skipped.
//
//	verify <bundle>         Read every entry end to end so the container
//	                        checksums can catch corruption.
//
// Environment:
//
//	LOG_LEVEL          - Trace log threshold (default: info)
//	FILEIO_MAX_RETRIES - Stale handle retry attempts (default: 3)
//	CONFIG_FILE        - Optional JSON configuration file
//
// Notes:
//
// Bundles produced here are the containers the assetfs package serves
// reads from at runtime. Packing and extraction go through the same file
// access capability the library uses, so operation metrics are recorded
// even in CLI use.
package main
