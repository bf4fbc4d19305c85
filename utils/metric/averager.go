// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/mosaics/utils/wrappers"
)

type Averager interface {
	Observe(float64)
}

type averager struct {
	count prometheus.Counter
	sum   prometheus.Gauge
}

func NewAverager(namespace, name, desc string, registerer prometheus.Registerer) (Averager, error) {
	errs := wrappers.Errs{}
	a := NewAveragerWithErrs(namespace, name, desc, registerer, &errs)
	return a, errs.Err
}

// NewAveragerWithErrs registers a <name>_count counter and a <name>_sum gauge
// whose ratio is the running average.
func NewAveragerWithErrs(namespace, name, desc string, registerer prometheus.Registerer, errs *wrappers.Errs) Averager {
	a := averager{
		count: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      AppendNamespace(name, "count"),
			Help:      "Total # of observations of " + desc,
		}),
		sum: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      AppendNamespace(name, "sum"),
			Help:      "Sum of " + desc,
		}),
	}

	errs.Add(
		registerer.Register(a.count),
		registerer.Register(a.sum),
	)
	return &a
}

func (a *averager) Observe(v float64) {
	a.count.Inc()
	a.sum.Add(v)
}

func AppendNamespace(prefix, suffix string) string {
	switch {
	case len(prefix) == 0:
		return suffix
	case len(suffix) == 0:
		return prefix
	default:
		return prefix + "_" + suffix
	}
}
