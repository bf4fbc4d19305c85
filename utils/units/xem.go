// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

// Denominations of the network fee currency.
// Fees are quoted in micro-units; one whole unit is 10^6 micro-units.
const (
	MicroXEM uint64 = 1
	MilliXEM uint64 = 1000 * MicroXEM
	XEM      uint64 = 1000 * MilliXEM
	KiloXEM  uint64 = 1000 * XEM
	MegaXEM  uint64 = 1000 * KiloXEM
)
