package metrics

import (
	"testing"
)

func TestFileOperationMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"FileOperationsTotal", FileOperationsTotal},
		{"FileOperationBytes", FileOperationBytes},
		{"FileOperationDuration", FileOperationDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestRetryMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"FileRetryAttempts", FileRetryAttempts},
		{"FileRetrySuccess", FileRetrySuccess},
		{"FileRetryFailures", FileRetryFailures},
		{"FileStaleErrors", FileStaleErrors},
		{"FileRetryDuration", FileRetryDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestAssetMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"AssetOpensTotal", AssetOpensTotal},
		{"AssetBundleEntries", AssetBundleEntries},
		{"AssetBundleBytes", AssetBundleBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestFileOperationMetricOperations(t *testing.T) {
	t.Run("FileOperationsTotal increment", func(_ *testing.T) {
		// Should not panic
		FileOperationsTotal.WithLabelValues("load", "success").Add(0)
		FileOperationsTotal.WithLabelValues("save", "error").Add(0)
	})

	t.Run("FileOperationBytes add", func(_ *testing.T) {
		// Should not panic
		FileOperationBytes.WithLabelValues("load").Add(0)
	})

	t.Run("FileOperationDuration observe", func(_ *testing.T) {
		// Should not panic
		FileOperationDuration.WithLabelValues("load").Observe(0.001)
	})
}

func TestRetryMetricOperations(t *testing.T) {
	t.Run("counters increment", func(_ *testing.T) {
		// Should not panic
		FileRetryAttempts.WithLabelValues("open", "data").Add(0)
		FileRetrySuccess.WithLabelValues("open", "data").Add(0)
		FileRetryFailures.WithLabelValues("stat", "unknown").Add(0)
		FileStaleErrors.WithLabelValues("stat", "unknown").Add(0)
	})

	t.Run("FileRetryDuration observe", func(_ *testing.T) {
		// Should not panic
		FileRetryDuration.WithLabelValues("open", "data").Observe(0.05)
	})
}

func TestAssetMetricOperations(t *testing.T) {
	t.Run("AssetOpensTotal by source", func(_ *testing.T) {
		// Should not panic
		AssetOpensTotal.WithLabelValues("bundle").Add(0)
		AssetOpensTotal.WithLabelValues("fallback").Add(0)
		AssetOpensTotal.WithLabelValues("direct").Add(0)
	})

	t.Run("bundle gauges set", func(_ *testing.T) {
		// Should not panic
		AssetBundleEntries.Set(128)
		AssetBundleBytes.Set(1024 * 1024 * 16)
	})
}

func TestInitializeMetrics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("InitializeMetrics() panicked: %v", r)
		}
	}()

	InitializeMetrics()

	// Calling again must be harmless
	InitializeMetrics()
}

func TestFileObserver(t *testing.T) {
	obs := NewFileObserver()
	if obs == nil {
		t.Fatal("NewFileObserver() returned nil")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("observer call panicked: %v", r)
		}
	}()

	obs.ObserveOperation("load", "success", 0.002, 4096)
	obs.ObserveOperation("save", "error", 0.001, 0)
	obs.ObserveRetryAttempt("open", "data")
	obs.ObserveRetrySuccess("open", "data")
	obs.ObserveRetryFailure("stat", "unknown")
	obs.ObserveRetryDuration("open", "data", 0.1)
	obs.ObserveStaleError("open", "data")
}

func TestAssetObserver(t *testing.T) {
	obs := NewAssetObserver()
	if obs == nil {
		t.Fatal("NewAssetObserver() returned nil")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("observer call panicked: %v", r)
		}
	}()

	obs.ObserveOpen("bundle")
	obs.ObserveOpen("fallback")
	obs.ObserveOpen("direct")
}

func TestMetricsConcurrentAccess(t *testing.T) {
	// Metrics must be updatable concurrently without panic
	done := make(chan bool, 10)

	for i := 0; i < 10; i++ {
		go func(id int) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Goroutine %d panicked: %v", id, r)
				}
				done <- true
			}()

			FileOperationsTotal.WithLabelValues("load", "success").Inc()
			FileRetryAttempts.WithLabelValues("open", "data").Inc()
			AssetOpensTotal.WithLabelValues("bundle").Inc()
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func BenchmarkFileOperationMetrics(b *testing.B) {
	b.Run("Counter increment", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			FileOperationsTotal.WithLabelValues("load", "success").Inc()
		}
	})

	b.Run("Histogram observe", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			FileOperationDuration.WithLabelValues("load").Observe(0.001)
		}
	})
}

func BenchmarkObserver(b *testing.B) {
	obs := NewFileObserver()

	b.Run("ObserveOperation", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			obs.ObserveOperation("load", "success", 0.001, 1024)
		}
	})
}
