// SPDX-License-Identifier: MIT

package operators

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qualg/coeff"
)

// NoisePair is an ordered pair of canonical keys indexing one Lindblad
// dissipator term L_left ρ L_right† − ½{L_right† L_left, ρ}. The pair is
// ordered: (L, R) and (R, L) are distinct entries, and no symmetrization
// is applied on insertion — callers wanting a self-adjoint dissipator
// insert both orderings explicitly.
type NoisePair[K any] struct {
	Left  K
	Right K
}

// NoiseTerm is one weighted dissipator entry.
type NoiseTerm[K any] struct {
	Pair  NoisePair[K]
	Value coeff.Coefficient
}

// NoiseOperator is a weighted sum of Lindblad dissipator terms, keyed by
// ordered pairs of canonical product indices. Self-adjointness of the
// dissipator sum means invariance under simultaneous pair swap and
// coefficient conjugation; it is a property callers may maintain, not one
// the container enforces.
type NoiseOperator[K Key[K]] struct {
	terms    map[string]NoiseTerm[K]
	capacity int
}

// NewNoiseOperator returns an empty NoiseOperator without a declared
// capacity.
func NewNoiseOperator[K Key[K]]() *NoiseOperator[K] {
	return &NoiseOperator[K]{terms: make(map[string]NoiseTerm[K]), capacity: unboundedCapacity}
}

// NewNoiseOperatorWithCapacity returns an empty NoiseOperator whose keys
// must fit within n sites/modes.
func NewNoiseOperatorWithCapacity[K Key[K]](n int) (*NoiseOperator[K], error) {
	if n < 0 {
		return nil, fmt.Errorf("capacity %d: %w", n, ErrBadCapacity)
	}

	return &NoiseOperator[K]{terms: make(map[string]NoiseTerm[K]), capacity: n}, nil
}

// pairID is the canonical map key for an ordered pair. The '|' separator
// cannot occur in any product grammar, so the encoding is injective.
func pairID[K Key[K]](left, right K) string {
	return left.String() + "|" + right.String()
}

// Capacity returns the declared capacity and whether one was declared.
func (n *NoiseOperator[K]) Capacity() (int, bool) {
	return n.capacity, n.capacity != unboundedCapacity
}

// CurrentCapacity returns the smallest system size hosting every key on
// either side of every stored pair.
func (n *NoiseOperator[K]) CurrentCapacity() int {
	maxCap := 0
	for _, t := range n.terms {
		if c := t.Pair.Left.MinCapacity(); c > maxCap {
			maxCap = c
		}
		if c := t.Pair.Right.MinCapacity(); c > maxCap {
			maxCap = c
		}
	}

	return maxCap
}

func (n *NoiseOperator[K]) validatePair(left, right K) error {
	if n.capacity == unboundedCapacity {
		return nil
	}
	for _, k := range []K{left, right} {
		if k.MinCapacity() > n.capacity {
			return fmt.Errorf("key %s needs %d of %d sites: %w",
				k.String(), k.MinCapacity(), n.capacity, ErrCapacityExceeded)
		}
	}

	return nil
}

// Set replaces the coefficient stored for the ordered pair (left, right).
// Zero removes. The container is unchanged on error.
func (n *NoiseOperator[K]) Set(left, right K, v coeff.Coefficient) error {
	if err := n.validatePair(left, right); err != nil {
		return err
	}
	id := pairID(left, right)
	if v.IsZero() {
		delete(n.terms, id)

		return nil
	}
	n.terms[id] = NoiseTerm[K]{Pair: NoisePair[K]{Left: left, Right: right}, Value: v}

	return nil
}

// Add accumulates v into the ordered pair (left, right); net zero removes.
func (n *NoiseOperator[K]) Add(left, right K, v coeff.Coefficient) error {
	if err := n.validatePair(left, right); err != nil {
		return err
	}
	id := pairID(left, right)
	sum := n.terms[id].Value + v
	if sum.IsZero() {
		delete(n.terms, id)

		return nil
	}
	n.terms[id] = NoiseTerm[K]{Pair: NoisePair[K]{Left: left, Right: right}, Value: sum}

	return nil
}

// Get returns the coefficient stored for the ordered pair, or zero.
func (n *NoiseOperator[K]) Get(left, right K) coeff.Coefficient {
	return n.terms[pairID(left, right)].Value
}

// Len returns the number of stored dissipator terms.
func (n *NoiseOperator[K]) Len() int { return len(n.terms) }

// IsEmpty reports whether no term is stored.
func (n *NoiseOperator[K]) IsEmpty() bool { return len(n.terms) == 0 }

// Terms returns all stored terms ordered by left key, then right key.
func (n *NoiseOperator[K]) Terms() []NoiseTerm[K] {
	terms := make([]NoiseTerm[K], 0, len(n.terms))
	for _, t := range n.terms {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if c := terms[i].Pair.Left.Compare(terms[j].Pair.Left); c != 0 {
			return c < 0
		}

		return terms[i].Pair.Right.Compare(terms[j].Pair.Right) < 0
	})

	return terms
}

// Clone returns an independent deep copy.
func (n *NoiseOperator[K]) Clone() *NoiseOperator[K] {
	out := &NoiseOperator[K]{terms: make(map[string]NoiseTerm[K], len(n.terms)), capacity: n.capacity}
	for id, t := range n.terms {
		out.terms[id] = t
	}

	return out
}

// Equal reports exact equality of stored terms.
func (n *NoiseOperator[K]) Equal(other *NoiseOperator[K]) bool {
	if len(n.terms) != len(other.terms) {
		return false
	}
	for id, t := range n.terms {
		ot, ok := other.terms[id]
		if !ok || ot.Value != t.Value {
			return false
		}
	}

	return true
}

// ScalarMul returns a new noise operator with every coefficient
// multiplied by c.
func (n *NoiseOperator[K]) ScalarMul(c coeff.Coefficient) *NoiseOperator[K] {
	out := &NoiseOperator[K]{terms: make(map[string]NoiseTerm[K], len(n.terms)), capacity: n.capacity}
	if c.IsZero() {
		return out
	}
	for id, t := range n.terms {
		out.terms[id] = NoiseTerm[K]{Pair: t.Pair, Value: t.Value * c}
	}

	return out
}

// AddNoiseOperator accumulates every term of other into n, atomically.
func (n *NoiseOperator[K]) AddNoiseOperator(other *NoiseOperator[K]) error {
	for _, t := range other.terms {
		if err := n.validatePair(t.Pair.Left, t.Pair.Right); err != nil {
			return err
		}
	}
	for _, t := range other.terms {
		mustNil(n.Add(t.Pair.Left, t.Pair.Right, t.Value))
	}

	return nil
}

// HermitianConjugate returns the conjugate noise operator: every pair
// swapped and every coefficient conjugated, since (v·L ρ R†)† = v̄·R ρ L†.
// A self-adjoint dissipator sum equals its own HermitianConjugate.
func (n *NoiseOperator[K]) HermitianConjugate() *NoiseOperator[K] {
	out := &NoiseOperator[K]{terms: make(map[string]NoiseTerm[K], len(n.terms)), capacity: n.capacity}
	for _, t := range n.terms {
		mustNil(out.Add(t.Pair.Right, t.Pair.Left, t.Value.Conj()))
	}

	return out
}

// Separate splits the noise operator by a predicate over both sides of
// the pair into a strict partition, as Operator.Separate does.
func (n *NoiseOperator[K]) Separate(pred func(left, right K) bool) (match, rest *NoiseOperator[K]) {
	match = &NoiseOperator[K]{terms: make(map[string]NoiseTerm[K]), capacity: n.capacity}
	rest = &NoiseOperator[K]{terms: make(map[string]NoiseTerm[K]), capacity: n.capacity}
	for id, t := range n.terms {
		if pred(t.Pair.Left, t.Pair.Right) {
			match.terms[id] = t
		} else {
			rest.terms[id] = t
		}
	}

	return match, rest
}
