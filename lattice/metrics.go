package lattice

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for lattice construction.
var (
	tracer = otel.Tracer("polylattice.lattice")
	meter  = otel.Meter("polylattice.lattice")
)

var (
	buildLatency  metric.Float64Histogram
	buildTotal    metric.Int64Counter
	nodesCreated  metric.Int64Histogram
	edgesCreated  metric.Int64Histogram
	facesRejected metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"lattice_build_duration_seconds",
			metric.WithDescription("Duration of lattice builds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildTotal, err = meter.Int64Counter(
			"lattice_build_total",
			metric.WithDescription("Total number of lattice builds"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesCreated, err = meter.Int64Histogram(
			"lattice_nodes_created",
			metric.WithDescription("Number of nodes per built lattice"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesCreated, err = meter.Int64Histogram(
			"lattice_edges_created",
			metric.WithDescription("Number of covering edges per built lattice"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		facesRejected, err = meter.Int64Counter(
			"lattice_faces_rejected_total",
			metric.WithDescription("Closed sets rejected by a cut"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordBuildMetrics records one finished build.
func recordBuildMetrics(ctx context.Context, mode string, duration time.Duration, nodes, edges, rejected int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("success", success),
	)

	buildLatency.Record(ctx, duration.Seconds(), attrs)
	buildTotal.Add(ctx, 1, attrs)
	facesRejected.Add(ctx, int64(rejected), attrs)

	if success {
		nodesCreated.Record(ctx, int64(nodes))
		edgesCreated.Record(ctx, int64(edges))
	}
}

// startBuildSpan opens a span around one build.
func startBuildSpan(ctx context.Context, op string, dual, artificial bool) (context.Context, trace.Span) {
	return tracer.Start(ctx, "lattice."+op,
		trace.WithAttributes(
			attribute.Bool("lattice.dual", dual),
			attribute.Bool("lattice.artificial_node", artificial),
		),
	)
}

// setBuildSpanResult annotates the span with the build's outcome.
func setBuildSpanResult(span trace.Span, nodes, edges, maxFaces int) {
	span.SetAttributes(
		attribute.Int("lattice.node_count", nodes),
		attribute.Int("lattice.edge_count", edges),
		attribute.Int("lattice.max_faces", maxFaces),
	)
}
