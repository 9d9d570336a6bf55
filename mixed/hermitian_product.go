// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// HermitianMixedProduct is the canonical half of a self-adjoint pair of
// mixed products: it denotes P + P†, stored as the representative that
// does not sort after its conjugate. The conjugation phase (carried by
// fermionic subsystems) is folded into the expansion.
type HermitianMixedProduct struct {
	inner MixedProduct
}

// NewHermitianMixedProduct wraps a mixed product as a canonical half.
// A representative sorting after its conjugate is rejected: the swap
// may carry a fermionic sign that a key-only constructor has nowhere
// to report.
func NewHermitianMixedProduct(p MixedProduct) (HermitianMixedProduct, error) {
	conj, _ := p.Conjugate()
	if p.Compare(conj) > 0 {
		return HermitianMixedProduct{}, fmt.Errorf("representative sorts after conjugate: %w", ErrNonCanonicalKey)
	}

	return HermitianMixedProduct{inner: p}, nil
}

// ParseHermitianMixedProduct parses the segmented grammar, rejecting
// the non-canonical orientation.
func ParseHermitianMixedProduct(s string) (HermitianMixedProduct, error) {
	p, err := ParseMixedProduct(s)
	if err != nil {
		return HermitianMixedProduct{}, err
	}

	return NewHermitianMixedProduct(p)
}

// Product returns the stored canonical representative.
func (h HermitianMixedProduct) Product() MixedProduct { return h.inner }

// String renders the canonical form of the representative.
func (h HermitianMixedProduct) String() string { return h.inner.String() }

// FromString parses the segmented grammar; the receiver is ignored.
func (HermitianMixedProduct) FromString(s string) (HermitianMixedProduct, error) {
	return ParseHermitianMixedProduct(s)
}

// Compare implements the total key order via the representative.
func (h HermitianMixedProduct) Compare(other HermitianMixedProduct) int {
	return h.inner.Compare(other.inner)
}

// Conjugate returns the receiver: a canonical half denotes a
// self-adjoint sum, which is its own conjugate.
func (h HermitianMixedProduct) Conjugate() (HermitianMixedProduct, coeff.Coefficient) {
	return h, coeff.One
}

// IsNaturalHermitian reports whether the representative alone is
// self-adjoint; only then must the stored coefficient be real.
func (h HermitianMixedProduct) IsNaturalHermitian() bool {
	return h.inner.IsNaturalHermitian()
}

// MinCapacity returns the largest per-subsystem extent.
func (h HermitianMixedProduct) MinCapacity() int { return h.inner.MinCapacity() }

// HermitianExpand returns the plain-key terms the half denotes.
func (h HermitianMixedProduct) HermitianExpand() []operators.HermTerm[MixedProduct] {
	if h.inner.IsNaturalHermitian() {
		return []operators.HermTerm[MixedProduct]{
			{Key: h.inner, Factor: coeff.One},
		}
	}
	conj, phase := h.inner.Conjugate()

	return []operators.HermTerm[MixedProduct]{
		{Key: h.inner, Factor: coeff.One},
		{Key: conj, Factor: phase, Conjugated: true},
	}
}
