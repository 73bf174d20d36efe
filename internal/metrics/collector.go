package metrics

import (
	"time"

	"github.com/noloitering/raylib/assetfs"
	"github.com/noloitering/raylib/tracelog"
)

// StatsProvider interface for collecting asset bundle stats
type StatsProvider interface {
	GetStats() Stats
}

// bundleStats adapts an open asset bundle to the StatsProvider interface.
type bundleStats struct {
	b *assetfs.Bundle
}

// NewBundleStatsProvider returns a StatsProvider reporting the entry
// count and unpacked payload size of b.
func NewBundleStatsProvider(b *assetfs.Bundle) StatsProvider {
	return bundleStats{b: b}
}

func (s bundleStats) GetStats() Stats {
	return Stats{
		BundleEntries: s.b.Count(),
		BundleBytes:   s.b.TotalSize(),
	}
}

// Stats holds a snapshot of the installed asset bundle
type Stats struct {
	BundleEntries int
	BundleBytes   int64
}

// Collector periodically collects and updates the bundle gauges
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	AssetBundleEntries.Set(float64(stats.BundleEntries))
	AssetBundleBytes.Set(float64(stats.BundleBytes))

	tracelog.Debug("METRICS: Collected bundle stats: entries=%d, bytes=%d",
		stats.BundleEntries, stats.BundleBytes)
}
