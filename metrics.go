package staticgraph

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Only construction and teardown are reported; Edges and the extender
// hot path are not instrumented.
type MetricsCollector interface {
	// RecordOpen is called after each Open. bytes is the mapped size of both files.
	RecordOpen(bytes int64, duration time.Duration, err error)

	// RecordValidate is called after each validation pass run by Open.
	RecordValidate(level ValidationLevel, duration time.Duration, err error)

	// RecordWrite is called after each WriteFiles. bytes is the payload written.
	RecordWrite(bytes int64, duration time.Duration, err error)

	// RecordClose is called when the last holder of a mapped graph closes it.
	RecordClose(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOpen(int64, time.Duration, error)               {}
func (NoopMetricsCollector) RecordValidate(ValidationLevel, time.Duration, error) {}
func (NoopMetricsCollector) RecordWrite(int64, time.Duration, error)              {}
func (NoopMetricsCollector) RecordClose(error)                                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	OpenCount          atomic.Int64
	OpenErrors         atomic.Int64
	OpenBytes          atomic.Int64
	OpenTotalNanos     atomic.Int64
	ValidateCount      atomic.Int64
	ValidateErrors     atomic.Int64
	ValidateTotalNanos atomic.Int64
	WriteCount         atomic.Int64
	WriteErrors        atomic.Int64
	WriteBytes         atomic.Int64
	CloseCount         atomic.Int64
	CloseErrors        atomic.Int64
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(bytes int64, duration time.Duration, err error) {
	b.OpenCount.Add(1)
	b.OpenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpenErrors.Add(1)
		return
	}
	b.OpenBytes.Add(bytes)
}

// RecordValidate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValidate(_ ValidationLevel, duration time.Duration, err error) {
	b.ValidateCount.Add(1)
	b.ValidateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ValidateErrors.Add(1)
	}
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(bytes int64, _ time.Duration, err error) {
	b.WriteCount.Add(1)
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WriteBytes.Add(bytes)
}

// RecordClose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClose(err error) {
	b.CloseCount.Add(1)
	if err != nil {
		b.CloseErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OpenCount:        b.OpenCount.Load(),
		OpenErrors:       b.OpenErrors.Load(),
		OpenBytes:        b.OpenBytes.Load(),
		OpenAvgNanos:     avg(b.OpenTotalNanos.Load(), b.OpenCount.Load()),
		ValidateCount:    b.ValidateCount.Load(),
		ValidateErrors:   b.ValidateErrors.Load(),
		ValidateAvgNanos: avg(b.ValidateTotalNanos.Load(), b.ValidateCount.Load()),
		WriteCount:       b.WriteCount.Load(),
		WriteErrors:      b.WriteErrors.Load(),
		WriteBytes:       b.WriteBytes.Load(),
		CloseCount:       b.CloseCount.Load(),
		CloseErrors:      b.CloseErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OpenCount        int64
	OpenErrors       int64
	OpenBytes        int64
	OpenAvgNanos     int64
	ValidateCount    int64
	ValidateErrors   int64
	ValidateAvgNanos int64
	WriteCount       int64
	WriteErrors      int64
	WriteBytes       int64
	CloseCount       int64
	CloseErrors      int64
}
