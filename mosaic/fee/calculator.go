// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/mosaics/mosaic"
	"github.com/luxfi/mosaics/utils/math"
	"github.com/luxfi/mosaics/utils/timer/mockable"
)

var (
	_ Lookup = (LookupFunc)(nil)

	ErrFeeComputationFailed = errors.New("fee computation failed")
	ErrDefinitionNotFound   = errors.New("mosaic definition not found")
)

// Lookup fetches every mosaic definition registered under a namespace.
// Retries and timeouts are the implementation's concern.
type Lookup interface {
	GetMosaicDefinitions(ctx context.Context, namespaceID string) ([]mosaic.Definition, error)
}

type LookupFunc func(ctx context.Context, namespaceID string) ([]mosaic.Definition, error)

func (f LookupFunc) GetMosaicDefinitions(ctx context.Context, namespaceID string) ([]mosaic.Definition, error) {
	return f(ctx, namespaceID)
}

// Result is the fee owed for a mosaic transfer, in micro-units.
type Result struct {
	// Total fee, never below MinimumFee
	Fee uint64
	// Contribution of each entry, in entry order. Entries without a
	// definition contribute 0.
	Contributions []uint64
}

// Calculator prices mosaic transfers against definitions fetched from a node.
type Calculator struct {
	config  Config
	lookup  Lookup
	log     log.Logger
	metrics *metrics
	clock   mockable.Clock
}

func NewCalculator(
	config Config,
	lookup Lookup,
	logger log.Logger,
	registerer prometheus.Registerer,
) (*Calculator, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Calculator{
		config:  config,
		lookup:  lookup,
		log:     logger,
		metrics: m,
	}, nil
}

// CalculateFee looks up the definition of every entry, one lookup per entry,
// and sums their contributions. Lookups run concurrently up to
// MaxConcurrentLookups; the result does not depend on their completion order.
// Any lookup failure fails the whole computation.
func (c *Calculator) CalculateFee(ctx context.Context, entries []mosaic.Entry) (*Result, error) {
	for i := range entries {
		if err := entries[i].Verify(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	var (
		definitions = make([]mosaic.Definition, len(entries))
		found       = make([]bool, len(entries))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.MaxConcurrentLookups)
	for i := range entries {
		g.Go(func() error {
			// Once a lookup has failed no further lookups are issued.
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrFeeComputationFailed, context.Cause(gctx))
			}
			def, ok, err := c.fetchDefinition(gctx, &entries[i])
			if err != nil {
				return err
			}
			definitions[i] = def
			found[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	contributions := make([]uint64, len(entries))
	for i := range entries {
		entry := &entries[i]
		if !found[i] {
			if c.config.StrictDefinitions {
				return nil, fmt.Errorf("%w: %w: %s", ErrFeeComputationFailed, ErrDefinitionNotFound, entry.ID)
			}
			c.metrics.skippedEntries.Inc()
			c.log.Warn("no mosaic definition found, entry adds no fee",
				log.Stringer("mosaic", entry.ID),
			)
			continue
		}
		contributions[i] = Contribution(entry.Quantity, definitions[i], c.config.ExponentMode)
	}

	total, err := math.Sum(contributions...)
	if err != nil {
		return nil, fmt.Errorf("%w: summing %d contributions: %w", ErrFeeComputationFailed, len(contributions), err)
	}
	fee := max(total, MinimumFee)
	c.metrics.observeFee(fee)

	c.log.Debug("calculated mosaic transfer fee",
		log.Int("entries", len(entries)),
		log.Uint64("fee", fee),
	)
	return &Result{
		Fee:           fee,
		Contributions: contributions,
	}, nil
}

func (c *Calculator) fetchDefinition(ctx context.Context, entry *mosaic.Entry) (mosaic.Definition, bool, error) {
	c.metrics.lookups.Inc()
	start := c.clock.Time()
	defs, err := c.lookup.GetMosaicDefinitions(ctx, entry.NamespaceID)
	c.metrics.lookupDuration.Observe(c.clock.Since(start).Seconds())
	if err != nil {
		c.metrics.lookupFailures.Inc()
		c.log.Error("mosaic definition lookup failed",
			log.Stringer("mosaic", entry.ID),
			log.String("error", err.Error()),
		)
		return mosaic.Definition{}, false, fmt.Errorf("%w: looking up namespace %q: %w", ErrFeeComputationFailed, entry.NamespaceID, err)
	}

	c.log.Debug("fetched mosaic definitions",
		log.String("namespace", entry.NamespaceID),
		log.Int("definitions", len(defs)),
	)
	def, ok := FindDefinition(defs, entry.Name)
	if !ok {
		return mosaic.Definition{}, false, nil
	}
	if err := VerifyDefinition(def); err != nil {
		return mosaic.Definition{}, false, fmt.Errorf("%w: %w", ErrFeeComputationFailed, err)
	}
	return def, true, nil
}
