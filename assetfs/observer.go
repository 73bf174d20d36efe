package assetfs

// Observer counts asset opens by source. Implementations are provided by
// the metrics package.
type Observer interface {
	// ObserveOpen records where an open was served from: "bundle" for a
	// container entry, "fallback" for the data path behind a bundle,
	// "direct" for plain filesystem access.
	ObserveOpen(source string)
}

// nopObserver drops every observation.
type nopObserver struct{}

func (nopObserver) ObserveOpen(source string) {}

// defaultObserver is the package-level observer set at startup.
var defaultObserver Observer = nopObserver{}

// SetObserver sets the package-level metrics observer. Passing nil
// restores the no-op observer. Call this once at startup.
func SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	defaultObserver = o
}

func observeOpen(source string) {
	defaultObserver.ObserveOpen(source)
}
