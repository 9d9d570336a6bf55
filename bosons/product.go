// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// BosonProduct is a normal-ordered word of bosonic ladder operators:
// creators first, then annihilators, each mode list sorted
// non-decreasing with repeats allowed. The zero value is the identity.
type BosonProduct struct {
	creators     []int
	annihilators []int
}

// NewBosonProduct builds a canonical product from creator and
// annihilator mode lists. Input order is irrelevant (bosonic modes
// commute); negative modes are rejected.
func NewBosonProduct(creators, annihilators []int) (BosonProduct, error) {
	for _, m := range creators {
		if m < 0 {
			return BosonProduct{}, fmt.Errorf("creator mode %d: %w", m, ErrNegativeMode)
		}
	}
	for _, m := range annihilators {
		if m < 0 {
			return BosonProduct{}, fmt.Errorf("annihilator mode %d: %w", m, ErrNegativeMode)
		}
	}

	c := append([]int{}, creators...)
	a := append([]int{}, annihilators...)
	sort.Ints(c)
	sort.Ints(a)

	return BosonProduct{creators: c, annihilators: a}, nil
}

// ParseBosonProduct parses the canonical grammar: "I" or a run of
// c<mode> tokens followed by a run of a<mode> tokens, each sorted
// non-decreasing.
func ParseBosonProduct(s string) (BosonProduct, error) {
	creators, annihilators, err := parseModes(s)
	if err != nil {
		return BosonProduct{}, err
	}
	if !sort.IntsAreSorted(creators) || !sort.IntsAreSorted(annihilators) {
		return BosonProduct{}, fmt.Errorf("modes out of order in %q: %w", s, ErrParse)
	}

	return NewBosonProduct(creators, annihilators)
}

// Create returns a copy with one more creator on mode. Panics on a
// negative mode.
func (p BosonProduct) Create(mode int) BosonProduct {
	if mode < 0 {
		panic("bosons: Create on negative mode")
	}
	c := insertMode(p.creators, mode)

	return BosonProduct{creators: c, annihilators: p.annihilators}
}

// Annihilate returns a copy with one more annihilator on mode. Panics on
// a negative mode.
func (p BosonProduct) Annihilate(mode int) BosonProduct {
	if mode < 0 {
		panic("bosons: Annihilate on negative mode")
	}
	a := insertMode(p.annihilators, mode)

	return BosonProduct{creators: p.creators, annihilators: a}
}

// insertMode copies modes with mode inserted at its sorted position.
func insertMode(modes []int, mode int) []int {
	at := sort.SearchInts(modes, mode+1)
	out := make([]int, 0, len(modes)+1)
	out = append(out, modes[:at]...)
	out = append(out, mode)
	out = append(out, modes[at:]...)

	return out
}

// Creators returns a copy of the creator mode list.
func (p BosonProduct) Creators() []int { return append([]int{}, p.creators...) }

// Annihilators returns a copy of the annihilator mode list.
func (p BosonProduct) Annihilators() []int { return append([]int{}, p.annihilators...) }

// NumberCreators returns the creator count.
func (p BosonProduct) NumberCreators() int { return len(p.creators) }

// NumberAnnihilators returns the annihilator count.
func (p BosonProduct) NumberAnnihilators() int { return len(p.annihilators) }

// String renders the canonical form, "I" for the identity.
func (p BosonProduct) String() string {
	if len(p.creators) == 0 && len(p.annihilators) == 0 {
		return "I"
	}
	buf := make([]byte, 0, 3*(len(p.creators)+len(p.annihilators)))
	buf = renderModes(buf, 'c', p.creators)
	buf = renderModes(buf, 'a', p.annihilators)

	return string(buf)
}

// FromString parses the canonical grammar; the receiver is ignored.
func (BosonProduct) FromString(s string) (BosonProduct, error) {
	return ParseBosonProduct(s)
}

// Compare implements the total key order: total ladder count first, then
// creator lists, then annihilator lists.
func (p BosonProduct) Compare(other BosonProduct) int {
	if d := (len(p.creators) + len(p.annihilators)) - (len(other.creators) + len(other.annihilators)); d != 0 {
		return d
	}
	if d := compareModes(p.creators, other.creators); d != 0 {
		return d
	}

	return compareModes(p.annihilators, other.annihilators)
}

// Conjugate returns the hermitian conjugate: creator and annihilator
// lists swap, and the reversed word is already normal ordered, so the
// phase is one.
func (p BosonProduct) Conjugate() (BosonProduct, coeff.Coefficient) {
	return BosonProduct{creators: p.annihilators, annihilators: p.creators}, coeff.One
}

// IsNaturalHermitian reports whether both mode lists coincide.
func (p BosonProduct) IsNaturalHermitian() bool {
	return equalModes(p.creators, p.annihilators)
}

// MinCapacity returns the highest referenced mode plus one.
func (p BosonProduct) MinCapacity() int {
	return minCapacityModes(p.creators, p.annihilators)
}

// Mul concatenates the two words and re-normal-orders via Wick
// contractions. Per shared mode with m annihilators on the left meeting
// n creators on the right, contraction order k contributes the factor
// k!·C(m,k)·C(n,k); independent modes expand as a cartesian product.
// Every resulting coefficient is a positive integer.
func (p BosonProduct) Mul(other BosonProduct) ([]operators.Term[BosonProduct], error) {
	leftAnn := countModes(p.annihilators)
	rightCre := countModes(other.creators)

	shared := make([]int, 0, len(leftAnn))
	for m := range leftAnn {
		if rightCre[m] > 0 {
			shared = append(shared, m)
		}
	}
	sort.Ints(shared)

	terms := make([]operators.Term[BosonProduct], 0, 1)
	contracted := make(map[int]int, len(shared))

	var expand func(idx int, factor float64)
	expand = func(idx int, factor float64) {
		if idx == len(shared) {
			key := p.contractWith(other, contracted)
			terms = append(terms, operators.Term[BosonProduct]{
				Key:   key,
				Value: coeff.FromFloat(factor),
			})

			return
		}
		mode := shared[idx]
		m, n := leftAnn[mode], rightCre[mode]
		max := m
		if n < max {
			max = n
		}
		for k := 0; k <= max; k++ {
			contracted[mode] = k
			expand(idx+1, factor*wickFactor(m, n, k))
		}
		delete(contracted, mode)
	}
	expand(0, 1)

	return terms, nil
}

// contractWith builds the normal-ordered key left over after removing
// the contracted ladder pairs.
func (p BosonProduct) contractWith(other BosonProduct, contracted map[int]int) BosonProduct {
	creators := append(append([]int{}, p.creators...), removeCopies(other.creators, contracted)...)
	annihilators := append(removeCopies(p.annihilators, contracted), other.annihilators...)
	sort.Ints(creators)
	sort.Ints(annihilators)

	return BosonProduct{creators: creators, annihilators: annihilators}
}

// countModes tallies mode multiplicities.
func countModes(modes []int) map[int]int {
	counts := make(map[int]int, len(modes))
	for _, m := range modes {
		counts[m]++
	}

	return counts
}

// removeCopies drops the contracted number of copies per mode; the input
// is sorted, so dropping leading copies preserves order.
func removeCopies(modes []int, contracted map[int]int) []int {
	remaining := make(map[int]int, len(contracted))
	for m, k := range contracted {
		remaining[m] = k
	}
	out := make([]int, 0, len(modes))
	for _, m := range modes {
		if remaining[m] > 0 {
			remaining[m]--

			continue
		}
		out = append(out, m)
	}

	return out
}

// wickFactor computes k!·C(m,k)·C(n,k) as the running product of
// (m-i+1)(n-i+1)/i, which stays integral at every step.
func wickFactor(m, n, k int) float64 {
	f := 1.0
	for i := 1; i <= k; i++ {
		f *= float64(m-i+1) * float64(n-i+1) / float64(i)
	}

	return f
}
