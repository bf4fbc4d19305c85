// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mosaic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/luxfi/mosaics/utils/wrappers"
)

// MaxFieldLen is the longest namespace or mosaic name that can be encoded.
// Both are bounded so that the enclosing structure lengths still fit in a
// signed 32-bit length field.
const MaxFieldLen = 1 << 16

var ErrInvalidEntry = errors.New("invalid mosaic entry")

// ID names a mosaic inside its namespace.
type ID struct {
	NamespaceID string `json:"namespaceId"`
	Name        string `json:"name"`
}

func (id ID) String() string {
	return id.NamespaceID + ":" + id.Name
}

// Entry is a single mosaic transfer: an amount of one mosaic, expressed in
// its smallest divisible unit.
type Entry struct {
	ID
	Quantity uint64 `json:"quantity"`
}

// Verify returns ErrInvalidEntry if the entry cannot be encoded.
func (e *Entry) Verify() error {
	switch {
	case len(e.NamespaceID) == 0:
		return fmt.Errorf("%w: empty namespace id", ErrInvalidEntry)
	case len(e.Name) == 0:
		return fmt.Errorf("%w: empty mosaic name in namespace %q", ErrInvalidEntry, e.NamespaceID)
	case len(e.NamespaceID) > MaxFieldLen:
		return fmt.Errorf("%w: namespace id length %d exceeds %d", ErrInvalidEntry, len(e.NamespaceID), MaxFieldLen)
	case len(e.Name) > MaxFieldLen:
		return fmt.Errorf("%w: mosaic name length %d exceeds %d", ErrInvalidEntry, len(e.Name), MaxFieldLen)
	default:
		return nil
	}
}

// IDStructureLen is the packed size of the namespace id and mosaic name,
// each with its length prefix.
func (e *Entry) IDStructureLen() uint32 {
	return uint32(wrappers.StringLen(e.NamespaceID) + wrappers.StringLen(e.Name))
}

// StructureLen is the value written in the entry's leading length field: the
// id structure with its own length prefix plus the quantity. The leading
// length field itself is not counted.
func (e *Entry) StructureLen() uint32 {
	return wrappers.IntLen + e.IDStructureLen() + wrappers.LongLen
}

// ParseEntry parses an entry written as namespace:name:quantity.
func ParseEntry(s string) (Entry, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Entry{}, fmt.Errorf("%w: %q is not namespace:name:quantity", ErrInvalidEntry, s)
	}
	quantity, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: quantity of %q: %w", ErrInvalidEntry, s, err)
	}
	e := Entry{
		ID: ID{
			NamespaceID: parts[0],
			Name:        parts[1],
		},
		Quantity: quantity,
	}
	return e, e.Verify()
}

// Definition is the registered shape of a mosaic as reported by a node.
type Definition struct {
	ID
	// Number of decimal places a quantity may be divided into
	Divisibility uint32 `json:"divisibility"`
	// Total issued quantity, in whole units
	Supply uint64 `json:"supply"`
}
