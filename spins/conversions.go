// SPDX-License-Identifier: MIT

// Package spins: conversions among the Pauli, decoherence and plus/minus
// single-site bases, at the product level (exact, phase-carrying) and at
// the operator level (term-by-term re-accumulation).

package spins

import (
	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// mustNoErr panics on an impossible error: used after insertions into
// fresh unbounded containers, where Add cannot fail.
func mustNoErr(err error) {
	if err != nil {
		panic("spins: internal invariant violated: " + err.Error())
	}
}

// DecoherenceProductToPauli rewrites a decoherence product as a single
// Pauli product with a scalar prefactor: each iY entry contributes a
// factor i (iY = i·Y).
func DecoherenceProductToPauli(d DecoherenceProduct) (PauliProduct, coeff.Coefficient) {
	entries := make([]siteEntry, len(d.entries))
	factor := coeff.One
	for i, e := range d.entries {
		op, f := decoherenceToPauli(SingleDecoherenceOperator(e.tag))
		factor *= f
		entries[i] = siteEntry{site: e.site, tag: uint8(op)}
	}

	return PauliProduct{entries: entries}, factor
}

// PauliProductToDecoherence rewrites a Pauli product as a single
// decoherence product with a scalar prefactor: each Y entry contributes a
// factor -i (Y = -i·(iY)).
func PauliProductToDecoherence(p PauliProduct) (DecoherenceProduct, coeff.Coefficient) {
	entries := make([]siteEntry, len(p.entries))
	factor := coeff.One
	for i, e := range p.entries {
		op, f := pauliToDecoherence(SinglePauliOperator(e.tag))
		factor *= f
		entries[i] = siteEntry{site: e.site, tag: uint8(op)}
	}

	return DecoherenceProduct{entries: entries}, factor
}

// weightedPauli is one branch option of a per-site basis expansion.
type weightedPauli struct {
	op SinglePauliOperator
	f  coeff.Coefficient
}

// PlusMinusProductToPauliTerms expands a ladder product into its weighted
// Pauli terms via σ± = (X ± iY)/2, one branch pair per ladder entry.
func PlusMinusProductToPauliTerms(p PlusMinusProduct) []operators.Term[PauliProduct] {
	half := coeff.FromFloat(0.5)
	halfI := coeff.FromParts(0, 0.5)
	branches := []operators.Term[PauliProduct]{{Key: NewPauliProduct(), Value: coeff.One}}
	for _, e := range p.entries {
		var options []weightedPauli
		switch SinglePlusMinusOperator(e.tag) {
		case PlusMinusPlus:
			options = []weightedPauli{{PauliX, half}, {PauliY, halfI}}
		case PlusMinusMinus:
			options = []weightedPauli{{PauliX, half}, {PauliY, -halfI}}
		default:
			options = []weightedPauli{{PauliZ, coeff.One}}
		}

		next := make([]operators.Term[PauliProduct], 0, len(branches)*len(options))
		for _, br := range branches {
			for _, opt := range options {
				next = append(next, operators.Term[PauliProduct]{
					Key:   br.Key.SetPauli(e.site, opt.op),
					Value: br.Value * opt.f,
				})
			}
		}
		branches = next
	}

	return branches
}

// weightedDecoherence is one branch option of a per-site basis expansion.
type weightedDecoherence struct {
	op SingleDecoherenceOperator
	f  coeff.Coefficient
}

// PlusMinusProductToDecoherenceTerms expands a ladder product into its
// weighted decoherence terms via σ± = (X ± iY)/2, with iY taken as a
// basis letter so every branch weight stays real.
func PlusMinusProductToDecoherenceTerms(p PlusMinusProduct) []operators.Term[DecoherenceProduct] {
	half := coeff.FromFloat(0.5)
	branches := []operators.Term[DecoherenceProduct]{{Key: NewDecoherenceProduct(), Value: coeff.One}}
	for _, e := range p.entries {
		var options []weightedDecoherence
		switch SinglePlusMinusOperator(e.tag) {
		case PlusMinusPlus:
			options = []weightedDecoherence{{DecoherenceX, half}, {DecoherenceIY, half}}
		case PlusMinusMinus:
			options = []weightedDecoherence{{DecoherenceX, half}, {DecoherenceIY, -half}}
		default:
			options = []weightedDecoherence{{DecoherenceZ, coeff.One}}
		}

		next := make([]operators.Term[DecoherenceProduct], 0, len(branches)*len(options))
		for _, br := range branches {
			for _, opt := range options {
				next = append(next, operators.Term[DecoherenceProduct]{
					Key:   br.Key.SetDecoherence(e.site, opt.op),
					Value: br.Value * opt.f,
				})
			}
		}
		branches = next
	}

	return branches
}

// weightedLadder is one branch option of a per-site basis expansion.
type weightedLadder struct {
	op SinglePlusMinusOperator
	f  coeff.Coefficient
}

// PauliProductToPlusMinusTerms expands a Pauli product into its weighted
// ladder terms via X = σ⁺ + σ⁻ and Y = -iσ⁺ + iσ⁻.
func PauliProductToPlusMinusTerms(p PauliProduct) []operators.Term[PlusMinusProduct] {
	branches := []operators.Term[PlusMinusProduct]{{Key: NewPlusMinusProduct(), Value: coeff.One}}
	for _, e := range p.entries {
		var options []weightedLadder
		switch SinglePauliOperator(e.tag) {
		case PauliX:
			options = []weightedLadder{{PlusMinusPlus, coeff.One}, {PlusMinusMinus, coeff.One}}
		case PauliY:
			options = []weightedLadder{{PlusMinusPlus, -coeff.I}, {PlusMinusMinus, coeff.I}}
		default:
			options = []weightedLadder{{PlusMinusZ, coeff.One}}
		}

		next := make([]operators.Term[PlusMinusProduct], 0, len(branches)*len(options))
		for _, br := range branches {
			for _, opt := range options {
				next = append(next, operators.Term[PlusMinusProduct]{
					Key:   br.Key.SetPlusMinus(e.site, opt.op),
					Value: br.Value * opt.f,
				})
			}
		}
		branches = next
	}

	return branches
}

// PauliOperatorToPlusMinus re-expresses a Pauli operator in the ladder
// basis term-by-term.
func PauliOperatorToPlusMinus(op *PauliOperator) *PlusMinusOperator {
	out := NewPlusMinusOperator()
	for _, t := range op.Terms() {
		for _, pm := range PauliProductToPlusMinusTerms(t.Key) {
			mustNoErr(out.Add(pm.Key, pm.Value*t.Value))
		}
	}

	return out
}

// PlusMinusOperatorToPauli re-expresses a ladder operator in the Pauli
// basis term-by-term.
func PlusMinusOperatorToPauli(op *PlusMinusOperator) *PauliOperator {
	out := NewPauliOperator()
	for _, t := range op.Terms() {
		for _, pp := range PlusMinusProductToPauliTerms(t.Key) {
			mustNoErr(out.Add(pp.Key, pp.Value*t.Value))
		}
	}

	return out
}

// DecoherenceProductToPlusMinusTerms expands a decoherence product into
// its weighted ladder terms via X = σ⁺ + σ⁻ and iY = σ⁺ - σ⁻.
func DecoherenceProductToPlusMinusTerms(d DecoherenceProduct) []operators.Term[PlusMinusProduct] {
	branches := []operators.Term[PlusMinusProduct]{{Key: NewPlusMinusProduct(), Value: coeff.One}}
	for _, e := range d.entries {
		var options []weightedLadder
		switch SingleDecoherenceOperator(e.tag) {
		case DecoherenceX:
			options = []weightedLadder{{PlusMinusPlus, coeff.One}, {PlusMinusMinus, coeff.One}}
		case DecoherenceIY:
			options = []weightedLadder{{PlusMinusPlus, coeff.One}, {PlusMinusMinus, -coeff.One}}
		default:
			options = []weightedLadder{{PlusMinusZ, coeff.One}}
		}

		next := make([]operators.Term[PlusMinusProduct], 0, len(branches)*len(options))
		for _, br := range branches {
			for _, opt := range options {
				next = append(next, operators.Term[PlusMinusProduct]{
					Key:   br.Key.SetPlusMinus(e.site, opt.op),
					Value: br.Value * opt.f,
				})
			}
		}
		branches = next
	}

	return branches
}

// PlusMinusOperatorToDecoherence re-expresses a ladder operator in the
// decoherence basis term-by-term.
func PlusMinusOperatorToDecoherence(op *PlusMinusOperator) *DecoherenceOperator {
	out := NewDecoherenceOperator()
	for _, t := range op.Terms() {
		for _, dt := range PlusMinusProductToDecoherenceTerms(t.Key) {
			mustNoErr(out.Add(dt.Key, dt.Value*t.Value))
		}
	}

	return out
}

// DecoherenceOperatorToPlusMinus re-expresses a decoherence operator in
// the ladder basis term-by-term.
func DecoherenceOperatorToPlusMinus(op *DecoherenceOperator) *PlusMinusOperator {
	out := NewPlusMinusOperator()
	for _, t := range op.Terms() {
		for _, pm := range DecoherenceProductToPlusMinusTerms(t.Key) {
			mustNoErr(out.Add(pm.Key, pm.Value*t.Value))
		}
	}

	return out
}

// DecoherenceOperatorToPauli re-expresses a decoherence operator in the
// Pauli basis term-by-term.
func DecoherenceOperatorToPauli(op *DecoherenceOperator) *PauliOperator {
	out := NewPauliOperator()
	for _, t := range op.Terms() {
		k, f := DecoherenceProductToPauli(t.Key)
		mustNoErr(out.Add(k, f*t.Value))
	}

	return out
}
