package rcv1go

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordFetch is called after each archive retrieval.
	RecordFetch(name string, bytes int, duration time.Duration, err error)

	// RecordParse is called after each component parse.
	RecordParse(component string, rows int, duration time.Duration, err error)

	// RecordCacheGet is called after each cache lookup.
	RecordCacheGet(key string, hit bool)

	// RecordCachePut is called after each cache write.
	RecordCachePut(key string, bytes int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFetch(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordParse(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCacheGet(string, bool)                   {}
func (NoopMetricsCollector) RecordCachePut(string, int, error)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging without external dependencies.
type BasicMetricsCollector struct {
	FetchCount       atomic.Int64
	FetchErrors      atomic.Int64
	FetchBytes       atomic.Int64
	FetchTotalNanos  atomic.Int64
	ParseCount       atomic.Int64
	ParseErrors      atomic.Int64
	ParseRows        atomic.Int64
	CacheHits        atomic.Int64
	CacheMisses      atomic.Int64
	CachePuts        atomic.Int64
	CachePutErrors   atomic.Int64
	CacheBytesStored atomic.Int64
}

func (m *BasicMetricsCollector) RecordFetch(_ string, bytes int, d time.Duration, err error) {
	m.FetchCount.Add(1)
	m.FetchTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		m.FetchErrors.Add(1)
		return
	}
	m.FetchBytes.Add(int64(bytes))
}

func (m *BasicMetricsCollector) RecordParse(_ string, rows int, _ time.Duration, err error) {
	m.ParseCount.Add(1)
	if err != nil {
		m.ParseErrors.Add(1)
		return
	}
	m.ParseRows.Add(int64(rows))
}

func (m *BasicMetricsCollector) RecordCacheGet(_ string, hit bool) {
	if hit {
		m.CacheHits.Add(1)
	} else {
		m.CacheMisses.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordCachePut(_ string, bytes int, err error) {
	m.CachePuts.Add(1)
	if err != nil {
		m.CachePutErrors.Add(1)
		return
	}
	m.CacheBytesStored.Add(int64(bytes))
}
