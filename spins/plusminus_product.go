// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// PlusMinusProduct is a canonical product of single-site ladder operators
// {+, -, Z} over a sorted sparse set of sites, with σ± = (X ± iY)/2.
//
// Unlike the Pauli and decoherence bases, the ladder basis is not closed
// under multiplication, so Mul returns a genuine weighted list: products
// can split into up to 2^overlap terms and can vanish entirely (σ⁺σ⁺=0).
type PlusMinusProduct struct {
	entries []siteEntry
}

// NewPlusMinusProduct returns the identity product.
func NewPlusMinusProduct() PlusMinusProduct { return PlusMinusProduct{} }

// ParsePlusMinusProduct parses the canonical grammar: "I" or tokens like
// "0+1-2Z". Duplicate sites are rejected.
func ParsePlusMinusProduct(s string) (PlusMinusProduct, error) {
	tokens, err := tokenizeProduct(s)
	if err != nil {
		return PlusMinusProduct{}, err
	}
	entries := make([]siteEntry, 0, len(tokens))
	for _, tok := range tokens {
		op, symErr := ParseSinglePlusMinusOperator(tok.symbol)
		if symErr != nil {
			return PlusMinusProduct{}, fmt.Errorf("%w: %v", ErrParse, symErr)
		}
		if op == PlusMinusI {
			continue
		}
		entries = append(entries, siteEntry{site: tok.site, tag: uint8(op)})
	}
	sorted, err := sortEntries(entries)
	if err != nil {
		return PlusMinusProduct{}, err
	}

	return PlusMinusProduct{entries: sorted}, nil
}

// SetPlusMinus returns a copy with the operator at site replaced. Panics
// on a negative site.
func (p PlusMinusProduct) SetPlusMinus(site int, op SinglePlusMinusOperator) PlusMinusProduct {
	if site < 0 {
		panic("spins: SetPlusMinus on negative site")
	}
	entries := make([]siteEntry, 0, len(p.entries)+1)
	inserted := false
	for _, e := range p.entries {
		switch {
		case e.site == site:
			inserted = true
			if op != PlusMinusI {
				entries = append(entries, siteEntry{site: site, tag: uint8(op)})
			}
		case e.site > site && !inserted:
			inserted = true
			if op != PlusMinusI {
				entries = append(entries, siteEntry{site: site, tag: uint8(op)})
			}
			entries = append(entries, e)
		default:
			entries = append(entries, e)
		}
	}
	if !inserted && op != PlusMinusI {
		entries = append(entries, siteEntry{site: site, tag: uint8(op)})
	}

	return PlusMinusProduct{entries: entries}
}

// Plus returns a copy with σ⁺ at site.
func (p PlusMinusProduct) Plus(site int) PlusMinusProduct {
	return p.SetPlusMinus(site, PlusMinusPlus)
}

// Minus returns a copy with σ⁻ at site.
func (p PlusMinusProduct) Minus(site int) PlusMinusProduct {
	return p.SetPlusMinus(site, PlusMinusMinus)
}

// Z returns a copy with Z at site.
func (p PlusMinusProduct) Z(site int) PlusMinusProduct {
	return p.SetPlusMinus(site, PlusMinusZ)
}

// Get returns the operator at site, identity if absent.
func (p PlusMinusProduct) Get(site int) SinglePlusMinusOperator {
	for _, e := range p.entries {
		if e.site == site {
			return SinglePlusMinusOperator(e.tag)
		}
		if e.site > site {
			break
		}
	}

	return PlusMinusI
}

// Len returns the number of non-identity entries.
func (p PlusMinusProduct) Len() int { return len(p.entries) }

// String renders the canonical form, "I" for the identity.
func (p PlusMinusProduct) String() string {
	if len(p.entries) == 0 {
		return "I"
	}
	out := make([]byte, 0, 3*len(p.entries))
	for _, e := range p.entries {
		out = fmt.Appendf(out, "%d%s", e.site, SinglePlusMinusOperator(e.tag))
	}

	return string(out)
}

// FromString parses the canonical grammar; the receiver is ignored.
func (PlusMinusProduct) FromString(s string) (PlusMinusProduct, error) {
	return ParsePlusMinusProduct(s)
}

// Compare implements the total key order.
func (p PlusMinusProduct) Compare(other PlusMinusProduct) int {
	return compareEntries(p.entries, other.entries)
}

// Conjugate returns the hermitian conjugate: + and - swap, I and Z are
// fixed. The swapped key is already canonical (same sites), phase one.
func (p PlusMinusProduct) Conjugate() (PlusMinusProduct, coeff.Coefficient) {
	entries := make([]siteEntry, len(p.entries))
	for i, e := range p.entries {
		switch SinglePlusMinusOperator(e.tag) {
		case PlusMinusPlus:
			entries[i] = siteEntry{site: e.site, tag: uint8(PlusMinusMinus)}
		case PlusMinusMinus:
			entries[i] = siteEntry{site: e.site, tag: uint8(PlusMinusPlus)}
		default:
			entries[i] = e
		}
	}

	return PlusMinusProduct{entries: entries}, coeff.One
}

// IsNaturalHermitian reports whether the product carries no ladder
// entries (only I and Z are self-adjoint).
func (p PlusMinusProduct) IsNaturalHermitian() bool {
	for _, e := range p.entries {
		op := SinglePlusMinusOperator(e.tag)
		if op == PlusMinusPlus || op == PlusMinusMinus {
			return false
		}
	}

	return true
}

// MinCapacity returns the highest assigned site plus one.
func (p PlusMinusProduct) MinCapacity() int { return minCapacityOf(p.entries) }

// Mul multiplies two ladder products site-by-site and expands the
// per-site branches into a weighted list of canonical keys. The list is
// empty when any site's product vanishes.
func (p PlusMinusProduct) Mul(other PlusMinusProduct) ([]operators.Term[PlusMinusProduct], error) {
	// partial is one in-flight expansion branch.
	type partial struct {
		entries []siteEntry
		factor  coeff.Coefficient
	}
	branches := []partial{{entries: nil, factor: coeff.One}}

	extend := func(site int, options []weightedSymbol) {
		next := make([]partial, 0, len(branches)*len(options))
		for _, br := range branches {
			for _, opt := range options {
				entries := br.entries
				if opt.op != PlusMinusI {
					entries = append(append([]siteEntry{}, br.entries...),
						siteEntry{site: site, tag: uint8(opt.op)})
				}
				next = append(next, partial{entries: entries, factor: br.factor * opt.factor})
			}
		}
		branches = next
	}

	i, j := 0, 0
	for i < len(p.entries) && j < len(other.entries) {
		a, b := p.entries[i], other.entries[j]
		switch {
		case a.site < b.site:
			extend(a.site, []weightedSymbol{{SinglePlusMinusOperator(a.tag), coeff.One}})
			i++
		case a.site > b.site:
			extend(b.site, []weightedSymbol{{SinglePlusMinusOperator(b.tag), coeff.One}})
			j++
		default:
			extend(a.site, mulPlusMinus(SinglePlusMinusOperator(a.tag), SinglePlusMinusOperator(b.tag)))
			i++
			j++
		}
	}
	for ; i < len(p.entries); i++ {
		e := p.entries[i]
		extend(e.site, []weightedSymbol{{SinglePlusMinusOperator(e.tag), coeff.One}})
	}
	for ; j < len(other.entries); j++ {
		e := other.entries[j]
		extend(e.site, []weightedSymbol{{SinglePlusMinusOperator(e.tag), coeff.One}})
	}

	terms := make([]operators.Term[PlusMinusProduct], 0, len(branches))
	for _, br := range branches {
		if br.factor.IsZero() {
			continue
		}
		terms = append(terms, operators.Term[PlusMinusProduct]{
			Key:   PlusMinusProduct{entries: br.entries},
			Value: br.factor,
		})
	}

	return terms, nil
}
