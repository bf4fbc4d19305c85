// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"context"

	"github.com/luxfi/mosaics/mosaic"
)

// Transfer is an encoded mosaic list together with the fee it costs.
type Transfer struct {
	List *mosaic.List
	Fee  *Result
}

// NewTransfer encodes entries and prices them. Encoding happens first so that
// malformed entries fail before any lookup is issued.
func NewTransfer(ctx context.Context, entries []mosaic.Entry, calculator *Calculator) (*Transfer, error) {
	list, err := mosaic.Encode(entries)
	if err != nil {
		return nil, err
	}
	result, err := calculator.CalculateFee(ctx, list.Entries())
	if err != nil {
		return nil, err
	}
	return &Transfer{
		List: list,
		Fee:  result,
	}, nil
}
