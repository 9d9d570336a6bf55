// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// HermitianFermionProduct is the canonical half of a self-adjoint pair
// of fermion products: it denotes P + P† with the conjugation sign
// folded into the expansion. The stored representative is the one whose
// creator list does not sort after its annihilator list.
type HermitianFermionProduct struct {
	inner FermionProduct
}

// NewHermitianFermionProduct builds the canonical half for the given
// mode lists. Unlike the bosonic variant the non-canonical orientation
// is rejected rather than swapped: fermionic conjugation carries a sign
// that a key-only constructor has nowhere to report.
func NewHermitianFermionProduct(creators, annihilators []int) (HermitianFermionProduct, error) {
	p, err := NewFermionProduct(creators, annihilators)
	if err != nil {
		return HermitianFermionProduct{}, err
	}
	if compareModes(p.creators, p.annihilators) > 0 {
		return HermitianFermionProduct{}, fmt.Errorf("creators sort after annihilators: %w", ErrNonCanonicalKey)
	}

	return HermitianFermionProduct{inner: p}, nil
}

// ParseHermitianFermionProduct parses the canonical grammar, rejecting
// the non-canonical orientation.
func ParseHermitianFermionProduct(s string) (HermitianFermionProduct, error) {
	p, err := ParseFermionProduct(s)
	if err != nil {
		return HermitianFermionProduct{}, err
	}
	if compareModes(p.creators, p.annihilators) > 0 {
		return HermitianFermionProduct{}, fmt.Errorf("%q: %w", s, ErrNonCanonicalKey)
	}

	return HermitianFermionProduct{inner: p}, nil
}

// Product returns the stored canonical representative.
func (h HermitianFermionProduct) Product() FermionProduct { return h.inner }

// Creators returns a copy of the representative's creator mode list.
func (h HermitianFermionProduct) Creators() []int { return h.inner.Creators() }

// Annihilators returns a copy of the representative's annihilator mode
// list.
func (h HermitianFermionProduct) Annihilators() []int { return h.inner.Annihilators() }

// String renders the canonical form of the representative.
func (h HermitianFermionProduct) String() string { return h.inner.String() }

// FromString parses the canonical grammar; the receiver is ignored.
func (HermitianFermionProduct) FromString(s string) (HermitianFermionProduct, error) {
	return ParseHermitianFermionProduct(s)
}

// Compare implements the total key order via the representative.
func (h HermitianFermionProduct) Compare(other HermitianFermionProduct) int {
	return h.inner.Compare(other.inner)
}

// Conjugate returns the receiver: a canonical half denotes a
// self-adjoint sum, which is its own conjugate.
func (h HermitianFermionProduct) Conjugate() (HermitianFermionProduct, coeff.Coefficient) {
	return h, coeff.One
}

// IsNaturalHermitian reports whether the representative alone is
// self-adjoint; only then must the stored coefficient be real.
func (h HermitianFermionProduct) IsNaturalHermitian() bool {
	return h.inner.IsNaturalHermitian()
}

// MinCapacity returns the highest referenced mode plus one.
func (h HermitianFermionProduct) MinCapacity() int { return h.inner.MinCapacity() }

// HermitianExpand returns the plain-key terms the half denotes: the
// representative with the stored coefficient plus, unless the
// representative is its own conjugate, the conjugate key with the
// conjugated coefficient and the fermionic reordering sign.
func (h HermitianFermionProduct) HermitianExpand() []operators.HermTerm[FermionProduct] {
	if h.inner.IsNaturalHermitian() {
		return []operators.HermTerm[FermionProduct]{
			{Key: h.inner, Factor: coeff.One},
		}
	}
	conj, sign := h.inner.Conjugate()

	return []operators.HermTerm[FermionProduct]{
		{Key: h.inner, Factor: coeff.One},
		{Key: conj, Factor: sign, Conjugated: true},
	}
}
