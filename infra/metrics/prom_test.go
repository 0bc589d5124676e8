package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/transitops/omloop/core/metrics"
)

func TestPromSinkRecordsSolveResults(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	err = sink.RecordSolveResult([]coremetrics.SolveResult{
		{Algorithm: "mincost", VehicleType: "Touringcar", Trips: 4, Rotations: 2, IdleMinutes: 16, Duration: 3 * time.Millisecond},
		{Algorithm: "mincost", VehicleType: "Touringcar", Trips: 2, Rotations: 1, IdleMinutes: 5, Duration: time.Millisecond},
	})
	require.NoError(t, err)

	require.Equal(t, 2.0, testutil.ToFloat64(sink.partitions.WithLabelValues("mincost", "Touringcar")))
	require.Equal(t, 3.0, testutil.ToFloat64(sink.rotations.WithLabelValues("mincost", "Touringcar")))
	require.Equal(t, 21.0, testutil.ToFloat64(sink.idle.WithLabelValues("mincost", "Touringcar")))
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSink(reg)
	require.NoError(t, err)
	sink, err := NewPromSink(reg)
	require.NoError(t, err, "second registration must reuse existing collectors")
	require.NoError(t, sink.RecordSolveResult([]coremetrics.SolveResult{
		{Algorithm: "greedy", VehicleType: "Taxibus", Rotations: 1},
	}))
}
