// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// HermitianBosonProduct is the canonical half of a self-adjoint pair of
// boson products: it denotes P + P† (or just P when P is its own
// conjugate). The stored representative is the one whose creator list
// does not sort after its annihilator list, so a term and its conjugate
// can never coexist in a hamiltonian.
type HermitianBosonProduct struct {
	inner BosonProduct
}

// NewHermitianBosonProduct builds the canonical half for the given mode
// lists, swapping to the canonical orientation when needed (bosonic
// conjugation carries no phase). Negative modes are rejected.
func NewHermitianBosonProduct(creators, annihilators []int) (HermitianBosonProduct, error) {
	p, err := NewBosonProduct(creators, annihilators)
	if err != nil {
		return HermitianBosonProduct{}, err
	}
	if compareModes(p.creators, p.annihilators) > 0 {
		p, _ = p.Conjugate()
	}

	return HermitianBosonProduct{inner: p}, nil
}

// ParseHermitianBosonProduct parses the canonical grammar and rejects
// text in the non-canonical orientation: such a string never comes from
// a canonical rendering, so it signals corrupted or foreign data.
func ParseHermitianBosonProduct(s string) (HermitianBosonProduct, error) {
	p, err := ParseBosonProduct(s)
	if err != nil {
		return HermitianBosonProduct{}, err
	}
	if compareModes(p.creators, p.annihilators) > 0 {
		return HermitianBosonProduct{}, fmt.Errorf("%q: %w", s, ErrNonCanonicalKey)
	}

	return HermitianBosonProduct{inner: p}, nil
}

// Product returns the stored canonical representative.
func (h HermitianBosonProduct) Product() BosonProduct { return h.inner }

// Creators returns a copy of the representative's creator mode list.
func (h HermitianBosonProduct) Creators() []int { return h.inner.Creators() }

// Annihilators returns a copy of the representative's annihilator mode
// list.
func (h HermitianBosonProduct) Annihilators() []int { return h.inner.Annihilators() }

// String renders the canonical form of the representative.
func (h HermitianBosonProduct) String() string { return h.inner.String() }

// FromString parses the canonical grammar; the receiver is ignored.
func (HermitianBosonProduct) FromString(s string) (HermitianBosonProduct, error) {
	return ParseHermitianBosonProduct(s)
}

// Compare implements the total key order via the representative.
func (h HermitianBosonProduct) Compare(other HermitianBosonProduct) int {
	return h.inner.Compare(other.inner)
}

// Conjugate returns the receiver: a canonical half denotes a
// self-adjoint sum, which is its own conjugate.
func (h HermitianBosonProduct) Conjugate() (HermitianBosonProduct, coeff.Coefficient) {
	return h, coeff.One
}

// IsNaturalHermitian reports whether the representative alone is
// self-adjoint; only then must the stored coefficient be real.
func (h HermitianBosonProduct) IsNaturalHermitian() bool {
	return h.inner.IsNaturalHermitian()
}

// MinCapacity returns the highest referenced mode plus one.
func (h HermitianBosonProduct) MinCapacity() int { return h.inner.MinCapacity() }

// HermitianExpand returns the plain-key terms the half denotes: the
// representative with the stored coefficient, plus, for a non-natural
// half, the swapped key with the conjugated coefficient.
func (h HermitianBosonProduct) HermitianExpand() []operators.HermTerm[BosonProduct] {
	if h.inner.IsNaturalHermitian() {
		return []operators.HermTerm[BosonProduct]{
			{Key: h.inner, Factor: coeff.One},
		}
	}
	conj, _ := h.inner.Conjugate()

	return []operators.HermTerm[BosonProduct]{
		{Key: h.inner, Factor: coeff.One},
		{Key: conj, Factor: coeff.One, Conjugated: true},
	}
}
