// SPDX-License-Identifier: MIT

package fermions

import (
	"sort"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// FermionProduct is a normal-ordered word of fermionic ladder operators:
// creators first, then annihilators, each mode list strictly increasing.
// The zero value is the identity.
type FermionProduct struct {
	creators     []int
	annihilators []int
}

// NewFermionProduct builds a canonical product from creator and
// annihilator mode lists. Both lists must already be strictly
// increasing: a repeated mode makes the product identically zero and a
// reordering would change its sign, so neither is fixed up silently.
func NewFermionProduct(creators, annihilators []int) (FermionProduct, error) {
	if err := validateModes(creators); err != nil {
		return FermionProduct{}, err
	}
	if err := validateModes(annihilators); err != nil {
		return FermionProduct{}, err
	}

	return FermionProduct{
		creators:     append([]int{}, creators...),
		annihilators: append([]int{}, annihilators...),
	}, nil
}

// ParseFermionProduct parses the canonical grammar: "I" or a run of
// c<mode> tokens followed by a run of a<mode> tokens, each strictly
// increasing.
func ParseFermionProduct(s string) (FermionProduct, error) {
	creators, annihilators, err := parseModes(s)
	if err != nil {
		return FermionProduct{}, err
	}

	return NewFermionProduct(creators, annihilators)
}

// Creators returns a copy of the creator mode list.
func (p FermionProduct) Creators() []int { return append([]int{}, p.creators...) }

// Annihilators returns a copy of the annihilator mode list.
func (p FermionProduct) Annihilators() []int { return append([]int{}, p.annihilators...) }

// NumberCreators returns the creator count.
func (p FermionProduct) NumberCreators() int { return len(p.creators) }

// NumberAnnihilators returns the annihilator count.
func (p FermionProduct) NumberAnnihilators() int { return len(p.annihilators) }

// String renders the canonical form, "I" for the identity.
func (p FermionProduct) String() string {
	if len(p.creators) == 0 && len(p.annihilators) == 0 {
		return "I"
	}
	buf := make([]byte, 0, 3*(len(p.creators)+len(p.annihilators)))
	buf = renderModes(buf, 'c', p.creators)
	buf = renderModes(buf, 'a', p.annihilators)

	return string(buf)
}

// FromString parses the canonical grammar; the receiver is ignored.
func (FermionProduct) FromString(s string) (FermionProduct, error) {
	return ParseFermionProduct(s)
}

// Compare implements the total key order: total ladder count first, then
// creator lists, then annihilator lists.
func (p FermionProduct) Compare(other FermionProduct) int {
	if d := (len(p.creators) + len(p.annihilators)) - (len(other.creators) + len(other.annihilators)); d != 0 {
		return d
	}
	if d := compareModes(p.creators, other.creators); d != 0 {
		return d
	}

	return compareModes(p.annihilators, other.annihilators)
}

// Conjugate returns the hermitian conjugate: the lists swap, and
// re-sorting each reversed list of anticommuting factors costs
// (-1)^(m(m-1)/2 + k(k-1)/2) for list lengths m and k.
func (p FermionProduct) Conjugate() (FermionProduct, coeff.Coefficient) {
	m, k := len(p.creators), len(p.annihilators)
	sign := coeff.One
	if (m*(m-1)/2+k*(k-1)/2)%2 == 1 {
		sign = -coeff.One
	}

	return FermionProduct{creators: p.annihilators, annihilators: p.creators}, sign
}

// IsNaturalHermitian reports whether both mode lists coincide. The
// conjugation sign of such a key is always positive: the two reversal
// signs are equal and cancel.
func (p FermionProduct) IsNaturalHermitian() bool {
	return equalModes(p.creators, p.annihilators)
}

// MinCapacity returns the highest referenced mode plus one.
func (p FermionProduct) MinCapacity() int {
	return minCapacityModes(p.creators, p.annihilators)
}

// ladderOp is one letter of an unordered ladder word.
type ladderOp struct {
	mode    int
	creator bool
}

// word flattens the product into its ladder letters, creators first.
func (p FermionProduct) word() []ladderOp {
	out := make([]ladderOp, 0, len(p.creators)+len(p.annihilators))
	for _, m := range p.creators {
		out = append(out, ladderOp{mode: m, creator: true})
	}
	for _, m := range p.annihilators {
		out = append(out, ladderOp{mode: m})
	}

	return out
}

// Mul concatenates the two words and re-normal-orders with
// {a_i, c_j} = δ_ij: each creator moving left past an annihilator flips
// the sign, and a same-mode crossing additionally spawns the contracted
// word. Terms whose creator or annihilator list ends up with a repeated
// mode vanish by exclusion.
func (p FermionProduct) Mul(other FermionProduct) ([]operators.Term[FermionProduct], error) {
	word := append(p.word(), other.word()...)
	acc := make(map[string]operators.Term[FermionProduct])
	normalOrder(word, 1, acc)

	terms := make([]operators.Term[FermionProduct], 0, len(acc))
	for _, t := range acc {
		if t.Value.IsZero() {
			continue
		}
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Key.Compare(terms[j].Key) < 0 })

	return terms, nil
}

// normalOrder rewrites word into normal-ordered terms, accumulating
// signed contributions into acc keyed by canonical string.
func normalOrder(word []ladderOp, sign float64, acc map[string]operators.Term[FermionProduct]) {
	for i := 0; i+1 < len(word); i++ {
		if word[i].creator || !word[i+1].creator {
			continue
		}
		// word[i] is an annihilator directly left of a creator.
		if word[i].mode == word[i+1].mode {
			contracted := make([]ladderOp, 0, len(word)-2)
			contracted = append(contracted, word[:i]...)
			contracted = append(contracted, word[i+2:]...)
			normalOrder(contracted, sign, acc)
		}
		swapped := append([]ladderOp{}, word...)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		normalOrder(swapped, -sign, acc)

		return
	}

	// The word is creators then annihilators; sort each group with the
	// inversion-count sign, dropping excluded repeats.
	split := 0
	for split < len(word) && word[split].creator {
		split++
	}
	creators := make([]int, 0, split)
	for _, op := range word[:split] {
		creators = append(creators, op.mode)
	}
	annihilators := make([]int, 0, len(word)-split)
	for _, op := range word[split:] {
		annihilators = append(annihilators, op.mode)
	}

	creators, cSign, ok := sortSigned(creators)
	if !ok {
		return
	}
	annihilators, aSign, ok := sortSigned(annihilators)
	if !ok {
		return
	}

	key := FermionProduct{creators: creators, annihilators: annihilators}
	s := key.String()
	t := acc[s]
	t.Key = key
	t.Value += coeff.FromFloat(sign * float64(cSign) * float64(aSign))
	acc[s] = t
}

// sortSigned insertion-sorts modes, returning the permutation sign; ok
// is false when a mode repeats.
func sortSigned(modes []int) (sorted []int, sign int, ok bool) {
	sign = 1
	for i := 1; i < len(modes); i++ {
		for j := i; j > 0 && modes[j] < modes[j-1]; j-- {
			modes[j], modes[j-1] = modes[j-1], modes[j]
			sign = -sign
		}
	}
	for i := 1; i < len(modes); i++ {
		if modes[i] == modes[i-1] {
			return nil, 0, false
		}
	}

	return modes, sign, true
}
