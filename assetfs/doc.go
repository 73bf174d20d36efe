// Package assetfs redirects file access into a packaged, read only asset
// container.
//
// A Bundle wraps a container built by WriteBundle (or any zip archive).
// Open serves entries from the container and falls back to the real
// filesystem under the bundle's data path for files that were pushed
// outside it; Create always bypasses the container because packaged
// assets are read only. Installing the bundle routes every open in the
// library through it:
//
//	b, err := assetfs.InitBundle("assets.bundle", dataDir)
//
// DirFS provides the same capability backed by a plain directory, for
// platforms that ship loose files.
package assetfs
