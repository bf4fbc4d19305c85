// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mosaic

import (
	"errors"
	"fmt"

	"github.com/luxfi/mosaics/utils/math"
	"github.com/luxfi/mosaics/utils/wrappers"
)

// MaxListSize bounds the size of an encoded list.
const MaxListSize = 1 << 24

var ErrMalformedList = errors.New("malformed mosaic list")

// List is an encoded, ordered sequence of mosaic transfers. It is immutable
// once returned by Encode.
type List struct {
	entries []Entry
	bytes   []byte
	length  uint32
}

// Encode serializes entries in order:
//
//	count             uint32
//	per entry:
//	  structureLength   uint32
//	  idStructureLength uint32
//	  namespaceIdLength uint32, namespaceId bytes
//	  mosaicNameLength  uint32, mosaicName bytes
//	  quantity          uint64
//
// Every entry is verified before anything is written.
func Encode(entries []Entry) (*List, error) {
	for i := range entries {
		if err := entries[i].Verify(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	length := uint32(wrappers.IntLen)
	for i := range entries {
		var err error
		length, err = math.Add(length, entries[i].StructureLen()+wrappers.IntLen)
		if err != nil {
			return nil, fmt.Errorf("%w: list length: %w", ErrInvalidEntry, err)
		}
	}
	if length > MaxListSize {
		return nil, fmt.Errorf("%w: list length %d exceeds %d", ErrInvalidEntry, length, MaxListSize)
	}

	p := wrappers.Packer{
		MaxSize: MaxListSize,
		Bytes:   make([]byte, 0, length),
	}
	p.PackInt(uint32(len(entries)))
	for i := range entries {
		e := &entries[i]
		p.PackInt(e.StructureLen())
		p.PackInt(e.IDStructureLen())
		p.PackStr(e.NamespaceID)
		p.PackStr(e.Name)
		p.PackLong(e.Quantity)
	}
	if p.Errored() {
		return nil, p.Err
	}
	if p.Offset != int(length) {
		return nil, fmt.Errorf("%w: wrote %d bytes, expected %d", ErrMalformedList, p.Offset, length)
	}

	return &List{
		entries: append([]Entry(nil), entries...),
		bytes:   p.Bytes[:length],
		length:  length,
	}, nil
}

// Entries returns a copy of the encoded entries in their original order.
func (l *List) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Bytes returns a copy of the encoded list.
func (l *List) Bytes() []byte {
	return append([]byte(nil), l.bytes...)
}

// Len is the number of meaningful bytes in the encoded list.
func (l *List) Len() uint32 {
	return l.length
}

// Parse decodes a list produced by Encode. Every length field is checked
// against the bytes it claims to describe and trailing bytes are rejected.
// Decoded entries must pass the same checks Encode applies.
func Parse(b []byte) ([]Entry, error) {
	p := wrappers.Packer{Bytes: b}
	count := p.UnpackInt()
	if p.Errored() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedList, p.Err)
	}

	// Each entry needs at least its fixed-size fields.
	const minEntryLen = 4*wrappers.IntLen + wrappers.LongLen
	if uint64(count)*minEntryLen > uint64(p.Remaining()) {
		return nil, fmt.Errorf("%w: %d entries cannot fit in %d bytes", ErrMalformedList, count, p.Remaining())
	}

	entries := make([]Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		entry, err := parseEntry(&p)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedList, i, err)
		}
		entries = append(entries, entry)
	}
	if p.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedList, p.Remaining())
	}
	return entries, nil
}

func parseEntry(p *wrappers.Packer) (Entry, error) {
	structureLen := p.UnpackInt()
	start := p.Offset
	idStructureLen := p.UnpackInt()
	idStart := p.Offset
	entry := Entry{
		ID: ID{
			NamespaceID: p.UnpackLimitedStr(MaxFieldLen),
			Name:        p.UnpackLimitedStr(MaxFieldLen),
		},
	}
	idEnd := p.Offset
	entry.Quantity = p.UnpackLong()
	if p.Errored() {
		return Entry{}, p.Err
	}

	if got := uint32(idEnd - idStart); got != idStructureLen {
		return Entry{}, fmt.Errorf("id structure length %d does not match %d bytes read", idStructureLen, got)
	}
	if got := uint32(p.Offset - start); got != structureLen {
		return Entry{}, fmt.Errorf("structure length %d does not match %d bytes read", structureLen, got)
	}
	if err := entry.Verify(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
