// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package encode

import (
	"github.com/spf13/pflag"

	"github.com/luxfi/mosaics/mosaic"
)

const MosaicKey = "mosaic"

func AddFlags(flags *pflag.FlagSet) {
	flags.StringArray(MosaicKey, nil, "Mosaic to transfer as namespace:name:quantity, may be repeated")
}

type Config struct {
	Entries []mosaic.Entry
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	mosaicStrs, err := flags.GetStringArray(MosaicKey)
	if err != nil {
		return nil, err
	}

	entries := make([]mosaic.Entry, 0, len(mosaicStrs))
	for _, mosaicStr := range mosaicStrs {
		entry, err := mosaic.ParseEntry(mosaicStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &Config{
		Entries: entries,
	}, nil
}
