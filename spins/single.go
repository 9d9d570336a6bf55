// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
)

// SinglePauliOperator is one atomic spin symbol from the closed Pauli set
// {I, X, Y, Z} attached to a single site.
type SinglePauliOperator uint8

const (
	// PauliI is the single-site identity.
	PauliI SinglePauliOperator = iota

	// PauliX is the Pauli X (bit flip) operator.
	PauliX

	// PauliY is the Pauli Y operator.
	PauliY

	// PauliZ is the Pauli Z (phase flip) operator.
	PauliZ
)

// String renders the canonical one-letter symbol.
func (p SinglePauliOperator) String() string {
	switch p {
	case PauliI:
		return "I"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	default:
		return "Z"
	}
}

// ParseSinglePauliOperator parses a canonical one-letter Pauli symbol.
func ParseSinglePauliOperator(s string) (SinglePauliOperator, error) {
	switch s {
	case "I":
		return PauliI, nil
	case "X":
		return PauliX, nil
	case "Y":
		return PauliY, nil
	case "Z":
		return PauliZ, nil
	default:
		return PauliI, fmt.Errorf("%q: %w", s, ErrUnknownSymbol)
	}
}

// mulPauli multiplies two single-site Pauli symbols (left·right) and
// returns the resulting symbol with its scalar prefactor:
//
//	XX = YY = ZZ = I,  XY = iZ, YX = -iZ, YZ = iX, ZY = -iX,
//	ZX = iY, XZ = -iY, and I is neutral.
func mulPauli(left, right SinglePauliOperator) (SinglePauliOperator, coeff.Coefficient) {
	if left == PauliI {
		return right, coeff.One
	}
	if right == PauliI {
		return left, coeff.One
	}
	if left == right {
		return PauliI, coeff.One
	}
	// The remaining six cases follow the cyclic rule σa·σb = i ε_abc σc.
	third := PauliX ^ PauliY ^ PauliZ ^ left ^ right // constant XOR trick: X=1,Y=2,Z=3
	if cyclicPauli(left, right) {
		return third, coeff.I
	}

	return third, -coeff.I
}

// cyclicPauli reports whether (left, right) is one of the cyclically
// ordered pairs (X,Y), (Y,Z), (Z,X).
func cyclicPauli(left, right SinglePauliOperator) bool {
	switch left {
	case PauliX:
		return right == PauliY
	case PauliY:
		return right == PauliZ
	default:
		return right == PauliX
	}
}

// SingleDecoherenceOperator is one atomic symbol from the closed
// decoherence set {I, X, iY, Z}. Absorbing the factor i into Y keeps
// pairwise products inside the set with real prefactors ±1, which is what
// makes decoherence products suitable noise keys.
type SingleDecoherenceOperator uint8

const (
	// DecoherenceI is the single-site identity.
	DecoherenceI SingleDecoherenceOperator = iota

	// DecoherenceX is the Pauli X operator.
	DecoherenceX

	// DecoherenceIY is i times the Pauli Y operator.
	DecoherenceIY

	// DecoherenceZ is the Pauli Z operator.
	DecoherenceZ
)

// String renders the canonical symbol ("iY" for the absorbed-phase Y).
func (d SingleDecoherenceOperator) String() string {
	switch d {
	case DecoherenceI:
		return "I"
	case DecoherenceX:
		return "X"
	case DecoherenceIY:
		return "iY"
	default:
		return "Z"
	}
}

// ParseSingleDecoherenceOperator parses a canonical decoherence symbol.
func ParseSingleDecoherenceOperator(s string) (SingleDecoherenceOperator, error) {
	switch s {
	case "I":
		return DecoherenceI, nil
	case "X":
		return DecoherenceX, nil
	case "iY":
		return DecoherenceIY, nil
	case "Z":
		return DecoherenceZ, nil
	default:
		return DecoherenceI, fmt.Errorf("%q: %w", s, ErrUnknownSymbol)
	}
}

// mulDecoherence multiplies two single-site decoherence symbols
// (left·right). All prefactors are real:
//
//	XX = ZZ = I, (iY)(iY) = -I,
//	X(iY) = -Z, (iY)X = Z, (iY)Z = -X, Z(iY) = X, ZX = iY, XZ = -iY.
func mulDecoherence(left, right SingleDecoherenceOperator) (SingleDecoherenceOperator, coeff.Coefficient) {
	if left == DecoherenceI {
		return right, coeff.One
	}
	if right == DecoherenceI {
		return left, coeff.One
	}
	if left == right {
		if left == DecoherenceIY {
			return DecoherenceI, -coeff.One
		}

		return DecoherenceI, coeff.One
	}
	third := DecoherenceX ^ DecoherenceIY ^ DecoherenceZ ^ left ^ right
	// Derive the sign from the underlying Pauli table plus the absorbed
	// phases: each iY on the input contributes i, one on the output -i.
	lp, lf := decoherenceToPauli(left)
	rp, rf := decoherenceToPauli(right)
	out, phase := mulPauli(lp, rp)
	_, outBack := pauliToDecoherence(out)

	return third, lf * rf * phase * outBack
}

// decoherenceToPauli rewrites a decoherence symbol as factor·Pauli
// (iY = i·Y, others unchanged).
func decoherenceToPauli(d SingleDecoherenceOperator) (SinglePauliOperator, coeff.Coefficient) {
	switch d {
	case DecoherenceI:
		return PauliI, coeff.One
	case DecoherenceX:
		return PauliX, coeff.One
	case DecoherenceIY:
		return PauliY, coeff.I
	default:
		return PauliZ, coeff.One
	}
}

// pauliToDecoherence rewrites a Pauli symbol as factor·decoherence
// (Y = -i·(iY), others unchanged).
func pauliToDecoherence(p SinglePauliOperator) (SingleDecoherenceOperator, coeff.Coefficient) {
	switch p {
	case PauliI:
		return DecoherenceI, coeff.One
	case PauliX:
		return DecoherenceX, coeff.One
	case PauliY:
		return DecoherenceIY, -coeff.I
	default:
		return DecoherenceZ, coeff.One
	}
}

// SinglePlusMinusOperator is one atomic symbol from the ladder set
// {I, +, -, Z} with σ± = (X ± iY)/2.
type SinglePlusMinusOperator uint8

const (
	// PlusMinusI is the single-site identity.
	PlusMinusI SinglePlusMinusOperator = iota

	// PlusMinusPlus is the raising operator σ⁺.
	PlusMinusPlus

	// PlusMinusMinus is the lowering operator σ⁻.
	PlusMinusMinus

	// PlusMinusZ is the Pauli Z operator.
	PlusMinusZ
)

// String renders the canonical symbol.
func (p SinglePlusMinusOperator) String() string {
	switch p {
	case PlusMinusI:
		return "I"
	case PlusMinusPlus:
		return "+"
	case PlusMinusMinus:
		return "-"
	default:
		return "Z"
	}
}

// ParseSinglePlusMinusOperator parses a canonical plus/minus symbol.
func ParseSinglePlusMinusOperator(s string) (SinglePlusMinusOperator, error) {
	switch s {
	case "I":
		return PlusMinusI, nil
	case "+":
		return PlusMinusPlus, nil
	case "-":
		return PlusMinusMinus, nil
	case "Z":
		return PlusMinusZ, nil
	default:
		return PlusMinusI, fmt.Errorf("%q: %w", s, ErrUnknownSymbol)
	}
}

// weightedSymbol is one branch of a single-site plus/minus product.
type weightedSymbol struct {
	op     SinglePlusMinusOperator
	factor coeff.Coefficient
}

// mulPlusMinus multiplies two single-site ladder symbols (left·right).
// The ladder algebra is not closed: some products expand into two
// symbols, σ⁺σ⁺ and σ⁻σ⁻ vanish entirely (empty list).
//
//	σ⁺σ⁻ = (I+Z)/2   σ⁻σ⁺ = (I-Z)/2
//	σ⁺Z  = -σ⁺       Zσ⁺  = σ⁺
//	σ⁻Z  = σ⁻        Zσ⁻  = -σ⁻
//	ZZ   = I
func mulPlusMinus(left, right SinglePlusMinusOperator) []weightedSymbol {
	one := coeff.One
	half := coeff.FromFloat(0.5)
	switch {
	case left == PlusMinusI:
		return []weightedSymbol{{right, one}}
	case right == PlusMinusI:
		return []weightedSymbol{{left, one}}
	case left == PlusMinusZ && right == PlusMinusZ:
		return []weightedSymbol{{PlusMinusI, one}}
	case left == PlusMinusPlus && right == PlusMinusPlus,
		left == PlusMinusMinus && right == PlusMinusMinus:
		return nil
	case left == PlusMinusPlus && right == PlusMinusMinus:
		return []weightedSymbol{{PlusMinusI, half}, {PlusMinusZ, half}}
	case left == PlusMinusMinus && right == PlusMinusPlus:
		return []weightedSymbol{{PlusMinusI, half}, {PlusMinusZ, -half}}
	case left == PlusMinusPlus && right == PlusMinusZ:
		return []weightedSymbol{{PlusMinusPlus, -one}}
	case left == PlusMinusZ && right == PlusMinusPlus:
		return []weightedSymbol{{PlusMinusPlus, one}}
	case left == PlusMinusMinus && right == PlusMinusZ:
		return []weightedSymbol{{PlusMinusMinus, one}}
	default: // Z·σ⁻
		return []weightedSymbol{{PlusMinusMinus, -one}}
	}
}
