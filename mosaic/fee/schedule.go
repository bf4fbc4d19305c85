// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/luxfi/mosaics/mosaic"
	"github.com/luxfi/mosaics/utils/units"
)

const (
	// MinimumFee is the floor applied to every mosaic transfer.
	MinimumFee = units.XEM

	// Mosaics with at most this supply and no divisibility pay a flat fee.
	SmallSupplyLimit uint64 = 10_000
	SmallSupplyFee          = units.XEM

	// MaxDivisibility is the largest divisibility a definition may declare.
	MaxDivisibility uint32 = 6

	// Supply of the base currency in whole units.
	baseSupply = 8_999_999_999
	// Largest quantity, in smallest units, any mosaic may have.
	maxMosaicQuantity = 9_000_000_000_000_000

	minFeeUnits = 1
	maxFeeUnits = 25
	// xemEquivalent is scaled by 10^6, each fee unit covers 10^9 of it.
	feeUnitSize = 1_000_000_000

	supplyAdjustmentFactor = 0.8

	// 10^(2d) stays below 2^256 up to this divisibility.
	maxExactDivisibility = 38

	// Significant digits kept when the legacy schedule narrows its float
	// result before rounding up.
	legacySignificantDigits = 15
)

var (
	ErrInvalidExponentMode = errors.New("invalid exponent mode")
	ErrInvalidDefinition   = errors.New("invalid mosaic definition")

	ten           = uint256.NewInt(10)
	baseSupplyInt = uint256.NewInt(baseSupply)
	unitDivisor   = uint256.NewInt(feeUnitSize / units.XEM)
)

// ExponentMode selects how the supply term of the xem equivalent is computed.
type ExponentMode string

const (
	// ExponentPow uses supply * 10^divisibility.
	ExponentPow ExponentMode = "pow"
	// ExponentLegacyXOR uses (supply*10) XOR divisibility, reproducing the
	// fees quoted by older wallets.
	ExponentLegacyXOR ExponentMode = "legacy-xor"
)

func (m ExponentMode) Verify() error {
	switch m {
	case ExponentPow, ExponentLegacyXOR:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExponentMode, string(m))
	}
}

// VerifyDefinition rejects definitions the schedule cannot price.
func VerifyDefinition(def mosaic.Definition) error {
	if def.Divisibility > MaxDivisibility {
		return fmt.Errorf("%w: %s has divisibility %d, max is %d",
			ErrInvalidDefinition,
			def.ID,
			def.Divisibility,
			MaxDivisibility,
		)
	}
	return nil
}

// FindDefinition returns the first definition named name.
func FindDefinition(defs []mosaic.Definition, name string) (mosaic.Definition, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def, true
		}
	}
	return mosaic.Definition{}, false
}

// IsSmallSupply reports whether def is priced at the flat SmallSupplyFee.
func IsSmallSupply(def mosaic.Definition) bool {
	return def.Supply <= SmallSupplyLimit && def.Divisibility == 0
}

// Contribution returns the fee, in micro-units, owed for transferring
// quantity of the mosaic described by def.
func Contribution(quantity uint64, def mosaic.Definition, mode ExponentMode) uint64 {
	if IsSmallSupply(def) {
		return SmallSupplyFee
	}

	var feeUnits uint64
	if mode == ExponentLegacyXOR {
		feeUnits = legacyFeeUnits(quantity, def)
	} else {
		feeUnits = feeUnitsOf(quantity, def)
	}
	xemFee := float64(feeUnits * units.XEM)

	totalQuantity := float64(def.Supply) * math.Pow(10, float64(def.Divisibility))
	adjustment := math.Floor(supplyAdjustmentFactor*math.Log(maxMosaicQuantity/totalQuantity)) * float64(units.XEM)

	return toMicro(math.Max(1, xemFee-adjustment))
}

// feeUnitsOf returns clamp(ceil(xemEquivalent / 10^9), 1, 25) where
//
//	xemEquivalent = baseSupply * (quantity / 10^d) / (supply * 10^d) * 10^6
//
// evaluated exactly as ceil(baseSupply * quantity / (supply * 10^(2d) * 10^3)).
func feeUnitsOf(quantity uint64, def mosaic.Definition) uint64 {
	numerator := new(uint256.Int).Mul(baseSupplyInt, uint256.NewInt(quantity))
	if numerator.IsZero() {
		return minFeeUnits
	}
	if def.Divisibility > maxExactDivisibility {
		return minFeeUnits
	}

	scale := new(uint256.Int).Exp(ten, uint256.NewInt(2*uint64(def.Divisibility)))
	denominator, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(def.Supply), scale)
	if overflow {
		return minFeeUnits
	}
	denominator, overflow = denominator.MulOverflow(denominator, unitDivisor)
	if overflow {
		return minFeeUnits
	}
	if denominator.IsZero() {
		return maxFeeUnits
	}

	quotient := new(uint256.Int).Div(numerator, denominator)
	if !new(uint256.Int).Mod(numerator, denominator).IsZero() {
		quotient.AddUint64(quotient, 1)
	}
	if !quotient.IsUint64() {
		return maxFeeUnits
	}
	return clampFeeUnits(quotient.Uint64())
}

// legacyFeeUnits evaluates the xem equivalent in floating point with the
// supply term (supply*10) XOR divisibility. The result is narrowed to 15
// significant digits before rounding up.
func legacyFeeUnits(quantity uint64, def mosaic.Definition) uint64 {
	supplyTerm := float64(int64(def.Supply*10) ^ int64(def.Divisibility))
	xemEquivalent := baseSupply * (float64(quantity) / math.Pow(10, float64(def.Divisibility))) / supplyTerm * float64(units.XEM)
	switch {
	case math.IsNaN(xemEquivalent):
		return minFeeUnits
	case math.IsInf(xemEquivalent, 0):
		if xemEquivalent > 0 {
			return maxFeeUnits
		}
		return minFeeUnits
	}

	narrowed, err := strconv.ParseFloat(strconv.FormatFloat(xemEquivalent, 'e', legacySignificantDigits-1, 64), 64)
	if err != nil {
		narrowed = xemEquivalent
	}
	feeUnits := math.Ceil(narrowed / feeUnitSize)
	switch {
	case feeUnits < minFeeUnits:
		return minFeeUnits
	case feeUnits > maxFeeUnits:
		return maxFeeUnits
	default:
		return uint64(feeUnits)
	}
}

func clampFeeUnits(feeUnits uint64) uint64 {
	return min(max(feeUnits, minFeeUnits), maxFeeUnits)
}

// toMicro converts a non-negative float fee to micro-units, saturating
// instead of wrapping.
func toMicro(fee float64) uint64 {
	switch {
	case math.IsNaN(fee) || fee < 1:
		return 1
	case fee >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(fee)
	}
}
