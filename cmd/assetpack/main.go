package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/noloitering/raylib/assetfs"
	"github.com/noloitering/raylib/config"
	"github.com/noloitering/raylib/fileio"
	"github.com/noloitering/raylib/internal/metrics"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyLogging()
	fileio.SetRetryConfig(cfg.Retry)

	// Record operation metrics even in CLI use
	fileio.SetObserver(metrics.NewFileObserver())
	assetfs.SetObserver(metrics.NewAssetObserver())
	metrics.InitializeMetrics()

	var ok bool
	switch command {
	case "pack":
		ok = runPack(args)
	case "list":
		ok = runList(args)
	case "extract":
		ok = runExtract(args)
	case "verify":
		ok = runVerify(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", sanitizeCommand(command))
		printUsage()
		os.Exit(1)
	}

	if !ok {
		os.Exit(1)
	}
}

// sanitizeCommand returns a safe representation of a command string for
// display. Any character that is not alphanumeric, a hyphen, or an
// underscore is replaced with '_'.
func sanitizeCommand(cmd string) string {
	var b strings.Builder
	b.Grow(len(cmd))
	for _, r := range cmd {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func printUsage() {
	fmt.Println("Asset Bundle Management")
	fmt.Println("")
	fmt.Println("Usage: assetpack <command> [arguments]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  pack <dir> <bundle>      - Pack a directory tree into a bundle")
	fmt.Println("  list <bundle>            - List bundle entries with sizes")
	fmt.Println("  extract <bundle> <dir>   - Extract all entries into a directory")
	fmt.Println("  verify <bundle>          - Verify entry checksums")
	fmt.Println("")
	fmt.Println("Environment:")
	fmt.Println("  LOG_LEVEL          - Trace log threshold (default: info)")
	fmt.Println("  FILEIO_MAX_RETRIES - Stale handle retry attempts (default: 3)")
	fmt.Println("  CONFIG_FILE        - Optional JSON configuration file")
}

func runPack(args []string) bool {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: assetpack pack <dir> <bundle>")
		return false
	}
	srcDir, bundlePath := args[0], args[1]

	if err := assetfs.WriteBundle(bundlePath, srcDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to pack %s: %v\n", srcDir, err)
		return false
	}

	b, err := assetfs.OpenBundle(bundlePath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to reopen %s: %v\n", bundlePath, err)
		return false
	}
	defer b.Close()

	fmt.Printf("Packed %d entries (%s unpacked) into %s\n", b.Count(), formatBytes(b.TotalSize()), bundlePath)
	return true
}

func runList(args []string) bool {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: assetpack list <bundle>")
		return false
	}
	bundlePath := args[0]

	b, err := assetfs.OpenBundle(bundlePath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open %s: %v\n", bundlePath, err)
		return false
	}
	defer b.Close()

	for _, name := range b.List() {
		fmt.Printf("%10d  %s\n", b.EntrySize(name), name)
	}
	fmt.Printf("%d entries, %s unpacked\n", b.Count(), formatBytes(b.TotalSize()))
	return true
}

func runExtract(args []string) bool {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: assetpack extract <bundle> <dir>")
		return false
	}
	bundlePath, dstDir := args[0], args[1]

	b, err := assetfs.OpenBundle(bundlePath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open %s: %v\n", bundlePath, err)
		return false
	}
	defer b.Close()

	out := assetfs.NewDirFS(dstDir)
	extracted := 0
	for _, name := range b.List() {
		// Refuse entry names that would land outside the target directory
		if !filepath.IsLocal(filepath.FromSlash(name)) {
			fmt.Fprintf(os.Stderr, "Warning: Skipping entry with non-local path: %q\n", name)
			continue
		}

		if !extractEntry(b, out, name) {
			return false
		}
		extracted++
	}

	fmt.Printf("Extracted %d entries into %s\n", extracted, dstDir)
	return true
}

func extractEntry(b *assetfs.Bundle, out *assetfs.DirFS, name string) bool {
	src, err := b.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to read entry %s: %v\n", name, err)
		return false
	}
	defer src.Close()

	dst, err := out.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to create %s: %v\n", name, err)
		return false
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to extract %s: %v\n", name, err)
		return false
	}
	return true
}

func runVerify(args []string) bool {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: assetpack verify <bundle>")
		return false
	}
	bundlePath := args[0]

	b, err := assetfs.OpenBundle(bundlePath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open %s: %v\n", bundlePath, err)
		return false
	}
	defer b.Close()

	if err := b.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Bundle verification failed: %v\n", err)
		return false
	}

	fmt.Printf("Bundle OK: %d entries verified\n", b.Count())
	return true
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
