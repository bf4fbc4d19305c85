// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAverager(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	a, err := NewAverager("mosaic_fee", "lookup_duration", "lookup time (s)", registry)
	require.NoError(err)

	a.Observe(1)
	a.Observe(2)

	avg := a.(*averager)
	require.InDelta(2, testutil.ToFloat64(avg.count), 0)
	require.InDelta(3, testutil.ToFloat64(avg.sum), 0)

	families, err := registry.Gather()
	require.NoError(err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	require.ElementsMatch([]string{
		"mosaic_fee_lookup_duration_count",
		"mosaic_fee_lookup_duration_sum",
	}, names)
}

func TestAveragerDuplicate(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewAverager("", "x", "x", registry)
	require.NoError(t, err)

	_, err = NewAverager("", "x", "x", registry)
	require.Error(t, err)
}

func TestAppendNamespace(t *testing.T) {
	require := require.New(t)

	require.Equal("a_b", AppendNamespace("a", "b"))
	require.Equal("b", AppendNamespace("", "b"))
	require.Equal("a", AppendNamespace("a", ""))
}
