// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nis

import (
	stdjson "encoding/json"
	"fmt"

	"github.com/luxfi/mosaics/mosaic"
	"github.com/luxfi/mosaics/utils/json"
)

const (
	divisibilityProperty  = "divisibility"
	initialSupplyProperty = "initialSupply"
)

// DefinitionPage is one page of mosaic definitions as served by a node.
type DefinitionPage struct {
	Data []DefinitionMetaDataPair `json:"data"`
}

type DefinitionMetaDataPair struct {
	Meta struct {
		ID int64 `json:"id"`
	} `json:"meta"`
	Mosaic MosaicDefinition `json:"mosaic"`
}

type MosaicDefinition struct {
	Creator     string     `json:"creator"`
	Description string     `json:"description"`
	ID          mosaic.ID  `json:"id"`
	Properties  []Property `json:"properties"`
}

// Property values are always encoded as strings.
type Property struct {
	Name  string             `json:"name"`
	Value stdjson.RawMessage `json:"value"`
}

// ErrorReply is the body a node sends with a failed request.
type ErrorReply struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Definition converts the node representation into a mosaic.Definition.
func (d *MosaicDefinition) Definition() (mosaic.Definition, error) {
	var (
		divisibility json.Uint32
		supply       json.Uint64
		seen         = map[string]bool{}
	)
	for _, property := range d.Properties {
		var err error
		switch property.Name {
		case divisibilityProperty:
			err = divisibility.UnmarshalJSON(property.Value)
		case initialSupplyProperty:
			err = supply.UnmarshalJSON(property.Value)
		default:
			continue
		}
		if err != nil {
			return mosaic.Definition{}, fmt.Errorf("%w: %s property %q: %w", ErrMalformedDefinition, d.ID, property.Name, err)
		}
		seen[property.Name] = true
	}
	for _, name := range []string{divisibilityProperty, initialSupplyProperty} {
		if !seen[name] {
			return mosaic.Definition{}, fmt.Errorf("%w: %s is missing property %q", ErrMalformedDefinition, d.ID, name)
		}
	}
	return mosaic.Definition{
		ID:           d.ID,
		Divisibility: uint32(divisibility),
		Supply:       uint64(supply),
	}, nil
}
