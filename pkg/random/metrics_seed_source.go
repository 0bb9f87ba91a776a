package random

import (
	"context"
	"sync"

	"github.com/buildbarn/go-seedbank/pkg/clock"
	"github.com/buildbarn/go-seedbank/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	seedSourcePrometheusMetrics sync.Once

	seedSourceGetSeedDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "random",
			Name:      "seed_source_get_seed_duration_seconds",
			Help:      "Amount of time spent per GetSeed() call, including time spent waiting for admission, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-6, 6, 2),
		},
		[]string{"name", "outcome"})
)

type metricsSeedSource struct {
	base  SeedSource
	clock clock.Clock

	getSeedSuccess prometheus.Observer
	getSeedFailure prometheus.Observer
}

// NewMetricsSeedSource is a decorator for SeedSource that exposes the
// number and duration of GetSeed() calls through Prometheus. As the
// underlying operation is a pair of atomic mutations, the duration is
// in practice dominated by time spent waiting for admission, making it
// a direct measure of contention on the generator bank.
func NewMetricsSeedSource(base SeedSource, clock clock.Clock, name string) SeedSource {
	seedSourcePrometheusMetrics.Do(func() {
		prometheus.MustRegister(seedSourceGetSeedDurationSeconds)
	})

	return &metricsSeedSource{
		base:  base,
		clock: clock,

		getSeedSuccess: seedSourceGetSeedDurationSeconds.WithLabelValues(name, "Success"),
		getSeedFailure: seedSourceGetSeedDurationSeconds.WithLabelValues(name, "Failure"),
	}
}

func (ss *metricsSeedSource) GetSeed(ctx context.Context) (uint64, error) {
	timeStart := ss.clock.Now()
	seed, err := ss.base.GetSeed(ctx)
	duration := ss.clock.Now().Sub(timeStart).Seconds()
	if err != nil {
		ss.getSeedFailure.Observe(duration)
		return 0, err
	}
	ss.getSeedSuccess.Observe(duration)
	return seed, nil
}
