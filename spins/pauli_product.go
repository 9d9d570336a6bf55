// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// PauliProduct is a canonical product of single-site Pauli operators: a
// sorted sparse map from site to {X, Y, Z}, absent sites carrying the
// identity. The empty product is the global identity and prints "I".
//
// PauliProduct is an immutable value; SetPauli and the X/Y/Z chain
// helpers return modified copies. Every Pauli product is hermitian, so
// IsNaturalHermitian is always true and PauliHamiltonian coefficients are
// forced real.
type PauliProduct struct {
	entries []siteEntry
}

// PauliAssignment is one (site, operator) input of a merging constructor.
type PauliAssignment struct {
	Site int
	Op   SinglePauliOperator
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// NewPauliProductFromAssignments builds a canonical product from a
// sequence of (site, operator) assignments. Repeated sites are merged via
// the single-site multiplication table; the accumulated scalar prefactor
// is returned alongside the key (e.g. assigning X then Y on one site
// yields the key "…Z" with prefactor i). Identity assignments and merged
// identities are dropped. Fails with ErrNegativeSite on a negative site.
func NewPauliProductFromAssignments(ops []PauliAssignment) (PauliProduct, coeff.Coefficient, error) {
	bySite := make(map[int]SinglePauliOperator)
	phase := coeff.One
	for _, a := range ops {
		if a.Site < 0 {
			return PauliProduct{}, coeff.Zero, fmt.Errorf("site %d: %w", a.Site, ErrNegativeSite)
		}
		merged, factor := mulPauli(bySite[a.Site], a.Op)
		phase *= factor
		if merged == PauliI {
			delete(bySite, a.Site)
		} else {
			bySite[a.Site] = merged
		}
	}

	entries := make([]siteEntry, 0, len(bySite))
	for site, op := range bySite {
		entries = append(entries, siteEntry{site: site, tag: uint8(op)})
	}
	sorted, err := sortEntries(entries)
	if err != nil {
		// Unreachable: the map keys are unique by construction.
		return PauliProduct{}, coeff.Zero, err
	}

	return PauliProduct{entries: sorted}, phase, nil
}

// ParsePauliProduct parses the canonical grammar: "I", or a concatenation
// of <site><symbol> tokens such as "0Z1X". Sites may appear in any order
// (the result is canonical either way) but never twice.
func ParsePauliProduct(s string) (PauliProduct, error) {
	tokens, err := tokenizeProduct(s)
	if err != nil {
		return PauliProduct{}, err
	}
	entries := make([]siteEntry, 0, len(tokens))
	for _, tok := range tokens {
		op, symErr := ParseSinglePauliOperator(tok.symbol)
		if symErr != nil {
			return PauliProduct{}, fmt.Errorf("%w: %v", ErrParse, symErr)
		}
		if op == PauliI {
			continue
		}
		entries = append(entries, siteEntry{site: tok.site, tag: uint8(op)})
	}
	sorted, err := sortEntries(entries)
	if err != nil {
		return PauliProduct{}, err
	}

	return PauliProduct{entries: sorted}, nil
}

// SetPauli returns a copy with the operator at site replaced (identity
// removes the entry). Panics on a negative site: that is a programmer
// error, not data.
func (p PauliProduct) SetPauli(site int, op SinglePauliOperator) PauliProduct {
	if site < 0 {
		panic("spins: SetPauli on negative site")
	}
	entries := make([]siteEntry, 0, len(p.entries)+1)
	inserted := false
	for _, e := range p.entries {
		switch {
		case e.site == site:
			inserted = true
			if op != PauliI {
				entries = append(entries, siteEntry{site: site, tag: uint8(op)})
			}
		case e.site > site && !inserted:
			inserted = true
			if op != PauliI {
				entries = append(entries, siteEntry{site: site, tag: uint8(op)})
			}
			entries = append(entries, e)
		default:
			entries = append(entries, e)
		}
	}
	if !inserted && op != PauliI {
		entries = append(entries, siteEntry{site: site, tag: uint8(op)})
	}

	return PauliProduct{entries: entries}
}

// X returns a copy with Pauli X at site.
func (p PauliProduct) X(site int) PauliProduct { return p.SetPauli(site, PauliX) }

// Y returns a copy with Pauli Y at site.
func (p PauliProduct) Y(site int) PauliProduct { return p.SetPauli(site, PauliY) }

// Z returns a copy with Pauli Z at site.
func (p PauliProduct) Z(site int) PauliProduct { return p.SetPauli(site, PauliZ) }

// Get returns the operator at site, identity if absent.
func (p PauliProduct) Get(site int) SinglePauliOperator {
	for _, e := range p.entries {
		if e.site == site {
			return SinglePauliOperator(e.tag)
		}
		if e.site > site {
			break
		}
	}

	return PauliI
}

// Sites returns the explicitly assigned sites in ascending order.
func (p PauliProduct) Sites() []int {
	sites := make([]int, len(p.entries))
	for i, e := range p.entries {
		sites[i] = e.site
	}

	return sites
}

// Len returns the number of non-identity entries.
func (p PauliProduct) Len() int { return len(p.entries) }

// String renders the canonical form, "I" for the identity.
func (p PauliProduct) String() string {
	if len(p.entries) == 0 {
		return "I"
	}
	out := make([]byte, 0, 4*len(p.entries))
	for _, e := range p.entries {
		out = fmt.Appendf(out, "%d%s", e.site, SinglePauliOperator(e.tag))
	}

	return string(out)
}

// FromString parses the canonical grammar; the receiver is ignored.
func (PauliProduct) FromString(s string) (PauliProduct, error) { return ParsePauliProduct(s) }

// Compare implements the total key order.
func (p PauliProduct) Compare(other PauliProduct) int {
	return compareEntries(p.entries, other.entries)
}

// Conjugate returns the hermitian conjugate. Pauli products are hermitian
// symbols, so the key is unchanged and the phase is one.
func (p PauliProduct) Conjugate() (PauliProduct, coeff.Coefficient) { return p, coeff.One }

// IsNaturalHermitian always reports true for Pauli products.
func (p PauliProduct) IsNaturalHermitian() bool { return true }

// MinCapacity returns the highest assigned site plus one, 0 for identity.
func (p PauliProduct) MinCapacity() int { return minCapacityOf(p.entries) }

// Mul multiplies two Pauli products site-by-site. The Pauli algebra is
// closed and abelian up to phase, so the result is always a single
// canonical key with a scalar in {±1, ±i}; the list form keeps the
// contract uniform with the fermionic algebras.
func (p PauliProduct) Mul(other PauliProduct) ([]operators.Term[PauliProduct], error) {
	entries := make([]siteEntry, 0, len(p.entries)+len(other.entries))
	phase := coeff.One

	i, j := 0, 0
	for i < len(p.entries) && j < len(other.entries) {
		a, b := p.entries[i], other.entries[j]
		switch {
		case a.site < b.site:
			entries = append(entries, a)
			i++
		case a.site > b.site:
			entries = append(entries, b)
			j++
		default:
			merged, factor := mulPauli(SinglePauliOperator(a.tag), SinglePauliOperator(b.tag))
			phase *= factor
			if merged != PauliI {
				entries = append(entries, siteEntry{site: a.site, tag: uint8(merged)})
			}
			i++
			j++
		}
	}
	entries = append(entries, p.entries[i:]...)
	entries = append(entries, other.entries[j:]...)

	return []operators.Term[PauliProduct]{
		{Key: PauliProduct{entries: entries}, Value: phase},
	}, nil
}

// HermitianExpand returns the product itself: every Pauli product is its
// own canonical hermitian half.
func (p PauliProduct) HermitianExpand() []operators.HermTerm[PauliProduct] {
	return []operators.HermTerm[PauliProduct]{{Key: p, Factor: coeff.One}}
}
