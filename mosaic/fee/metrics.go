// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/mosaics/utils/metric"
	"github.com/luxfi/mosaics/utils/units"
	"github.com/luxfi/mosaics/utils/wrappers"
)

const metricsNamespace = "mosaic_fee"

type metrics struct {
	lookups        prometheus.Counter
	lookupFailures prometheus.Counter
	skippedEntries prometheus.Counter
	fees           prometheus.Histogram
	lookupDuration metric.Averager
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups",
			Help:      "Number of mosaic definition lookups issued",
		}),
		lookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookup_failures",
			Help:      "Number of mosaic definition lookups that failed",
		}),
		skippedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "skipped_entries",
			Help:      "Number of entries with no matching mosaic definition",
		}),
		fees: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "computed",
			Help:      "Computed transfer fees, in whole units",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),
	}

	errs := wrappers.Errs{}
	m.lookupDuration = metric.NewAveragerWithErrs(
		metricsNamespace,
		"lookup_duration",
		"time (in seconds) spent on definition lookups",
		registerer,
		&errs,
	)
	errs.Add(
		registerer.Register(m.lookups),
		registerer.Register(m.lookupFailures),
		registerer.Register(m.skippedEntries),
		registerer.Register(m.fees),
	)
	return m, errs.Err
}

func (m *metrics) observeFee(fee uint64) {
	m.fees.Observe(float64(fee) / float64(units.XEM))
}
