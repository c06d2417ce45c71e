package meshgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsertVertexOnEdge is called after each vertex insertion on an
	// edge. duration is the total time taken, err is nil if successful.
	RecordInsertVertexOnEdge(duration time.Duration, err error)

	// RecordSubstituteVertex is called after each vertex substitution.
	// faces is the number of faces rewritten.
	RecordSubstituteVertex(faces int, duration time.Duration, err error)

	// RecordSplitFace is called after each face split.
	RecordSplitFace(duration time.Duration, err error)

	// RecordSplitEdge is called after each parametric edge split.
	RecordSplitEdge(duration time.Duration, err error)

	// RecordSubdivide is called after each subdivision pass.
	RecordSubdivide(scheme SubdivisionScheme, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsertVertexOnEdge(time.Duration, error)           {}
func (NoopMetricsCollector) RecordSubstituteVertex(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordSplitFace(time.Duration, error)                    {}
func (NoopMetricsCollector) RecordSplitEdge(time.Duration, error)                    {}
func (NoopMetricsCollector) RecordSubdivide(SubdivisionScheme, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertVertexCount   atomic.Int64
	InsertVertexErrors  atomic.Int64
	InsertVertexNanos   atomic.Int64
	SubstituteCount     atomic.Int64
	SubstituteFaces     atomic.Int64
	SubstituteErrors    atomic.Int64
	SplitFaceCount      atomic.Int64
	SplitFaceErrors     atomic.Int64
	SplitFaceNanos      atomic.Int64
	SplitEdgeCount      atomic.Int64
	SplitEdgeErrors     atomic.Int64
	SubdivideCount      atomic.Int64
	SubdivideErrors     atomic.Int64
	SubdivideTotalNanos atomic.Int64
}

// RecordInsertVertexOnEdge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsertVertexOnEdge(duration time.Duration, err error) {
	b.InsertVertexCount.Add(1)
	b.InsertVertexNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertVertexErrors.Add(1)
	}
}

// RecordSubstituteVertex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubstituteVertex(faces int, duration time.Duration, err error) {
	b.SubstituteCount.Add(1)
	b.SubstituteFaces.Add(int64(faces))
	if err != nil {
		b.SubstituteErrors.Add(1)
	}
}

// RecordSplitFace implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplitFace(duration time.Duration, err error) {
	b.SplitFaceCount.Add(1)
	b.SplitFaceNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SplitFaceErrors.Add(1)
	}
}

// RecordSplitEdge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplitEdge(duration time.Duration, err error) {
	b.SplitEdgeCount.Add(1)
	if err != nil {
		b.SplitEdgeErrors.Add(1)
	}
}

// RecordSubdivide implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubdivide(scheme SubdivisionScheme, duration time.Duration, err error) {
	b.SubdivideCount.Add(1)
	b.SubdivideTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SubdivideErrors.Add(1)
	}
}
