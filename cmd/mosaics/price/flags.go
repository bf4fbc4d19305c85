// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package price

import (
	"github.com/spf13/pflag"

	"github.com/luxfi/mosaics/cmd/mosaics/encode"
	"github.com/luxfi/mosaics/mosaic"
	"github.com/luxfi/mosaics/mosaic/fee"
)

const (
	URIKey                  = "uri"
	ExponentModeKey         = "exponent-mode"
	StrictDefinitionsKey    = "strict-definitions"
	MaxConcurrentLookupsKey = "max-concurrent-lookups"
	VerboseKey              = "verbose"

	DefaultURI = "http://127.0.0.1:7890"
)

func AddFlags(flags *pflag.FlagSet) {
	encode.AddFlags(flags)
	flags.String(URIKey, DefaultURI, "URI of the node to fetch mosaic definitions from")
	flags.String(ExponentModeKey, string(fee.DefaultConfig.ExponentMode), "Supply term of the fee schedule (pow or legacy-xor)")
	flags.Bool(StrictDefinitionsKey, fee.DefaultConfig.StrictDefinitions, "Fail if a mosaic has no definition in its namespace")
	flags.Int(MaxConcurrentLookupsKey, fee.DefaultConfig.MaxConcurrentLookups, "Number of definition lookups to run at once")
	flags.Bool(VerboseKey, false, "Log lookups to stderr")
}

type Config struct {
	URI     string
	Entries []mosaic.Entry
	Fee     fee.Config
	Verbose bool
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	encodeConfig, err := encode.ParseFlags(flags, args)
	if err != nil {
		return nil, err
	}

	uri, err := flags.GetString(URIKey)
	if err != nil {
		return nil, err
	}

	exponentMode, err := flags.GetString(ExponentModeKey)
	if err != nil {
		return nil, err
	}

	strict, err := flags.GetBool(StrictDefinitionsKey)
	if err != nil {
		return nil, err
	}

	maxConcurrentLookups, err := flags.GetInt(MaxConcurrentLookupsKey)
	if err != nil {
		return nil, err
	}

	verbose, err := flags.GetBool(VerboseKey)
	if err != nil {
		return nil, err
	}

	feeConfig := fee.Config{
		ExponentMode:         fee.ExponentMode(exponentMode),
		StrictDefinitions:    strict,
		MaxConcurrentLookups: maxConcurrentLookups,
	}
	if err := feeConfig.Verify(); err != nil {
		return nil, err
	}

	return &Config{
		URI:     uri,
		Entries: encodeConfig.Entries,
		Fee:     feeConfig,
		Verbose: verbose,
	}, nil
}
