// SPDX-License-Identifier: MIT

package operators

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qualg/coeff"
)

// Hamiltonian is an Operator restricted to hermitian-canonical keys: only
// the "upper triangular" half of a self-adjoint operator is stored, the
// lower half is implied by conjugation. H is the hermitian canonical key
// type, K the plain key type its expansion produces.
//
// A natural hermitian key (its own conjugate) must carry a real
// coefficient; insertion of a complex one fails with
// ErrComplexCoefficient. Non-canonical keys cannot be expressed at all —
// the H constructors reject them.
//
// Hamiltonian is intentionally not closed under multiplication or complex
// scaling: both escape to the plain Operator type via ToOperator.
type Hamiltonian[H HermitianKey[H, K], K Key[K]] struct {
	terms    map[string]Term[H]
	capacity int
}

// NewHamiltonian returns an empty Hamiltonian without a declared capacity.
func NewHamiltonian[H HermitianKey[H, K], K Key[K]]() *Hamiltonian[H, K] {
	return &Hamiltonian[H, K]{terms: make(map[string]Term[H]), capacity: unboundedCapacity}
}

// NewHamiltonianWithCapacity returns an empty Hamiltonian whose keys must
// fit within n sites/modes.
func NewHamiltonianWithCapacity[H HermitianKey[H, K], K Key[K]](n int) (*Hamiltonian[H, K], error) {
	if n < 0 {
		return nil, fmt.Errorf("capacity %d: %w", n, ErrBadCapacity)
	}

	return &Hamiltonian[H, K]{terms: make(map[string]Term[H]), capacity: n}, nil
}

// Capacity returns the declared capacity and whether one was declared.
func (h *Hamiltonian[H, K]) Capacity() (int, bool) {
	return h.capacity, h.capacity != unboundedCapacity
}

// CurrentCapacity returns the smallest system size hosting every key.
func (h *Hamiltonian[H, K]) CurrentCapacity() int {
	maxCap := 0
	for _, t := range h.terms {
		if c := t.Key.MinCapacity(); c > maxCap {
			maxCap = c
		}
	}

	return maxCap
}

func (h *Hamiltonian[H, K]) validate(k H, v coeff.Coefficient) error {
	if h.capacity != unboundedCapacity && k.MinCapacity() > h.capacity {
		return fmt.Errorf("key %s needs %d of %d sites: %w",
			k.String(), k.MinCapacity(), h.capacity, ErrCapacityExceeded)
	}
	if k.IsNaturalHermitian() && !v.IsReal() {
		return fmt.Errorf("key %s with coefficient %s: %w",
			k.String(), v.String(), ErrComplexCoefficient)
	}

	return nil
}

// Set replaces the coefficient stored for k. Zero removes. The container
// is unchanged on error.
func (h *Hamiltonian[H, K]) Set(k H, v coeff.Coefficient) error {
	if err := h.validate(k, v); err != nil {
		return err
	}
	id := k.String()
	if v.IsZero() {
		delete(h.terms, id)

		return nil
	}
	h.terms[id] = Term[H]{Key: k, Value: v}

	return nil
}

// Add accumulates v into the coefficient stored for k; net zero removes.
func (h *Hamiltonian[H, K]) Add(k H, v coeff.Coefficient) error {
	if err := h.validate(k, v); err != nil {
		return err
	}
	id := k.String()
	sum := h.terms[id].Value + v
	if sum.IsZero() {
		delete(h.terms, id)

		return nil
	}
	h.terms[id] = Term[H]{Key: k, Value: sum}

	return nil
}

// Get returns the coefficient stored for k, or zero if absent.
func (h *Hamiltonian[H, K]) Get(k H) coeff.Coefficient {
	return h.terms[k.String()].Value
}

// Len returns the number of stored terms.
func (h *Hamiltonian[H, K]) Len() int { return len(h.terms) }

// IsEmpty reports whether no term is stored.
func (h *Hamiltonian[H, K]) IsEmpty() bool { return len(h.terms) == 0 }

// Keys returns all stored keys in the total key order.
func (h *Hamiltonian[H, K]) Keys() []H {
	keys := make([]H, 0, len(h.terms))
	for _, t := range h.terms {
		keys = append(keys, t.Key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	return keys
}

// Terms returns all stored terms in the total key order.
func (h *Hamiltonian[H, K]) Terms() []Term[H] {
	keys := h.Keys()
	terms := make([]Term[H], 0, len(keys))
	for _, k := range keys {
		terms = append(terms, h.terms[k.String()])
	}

	return terms
}

// Clone returns an independent deep copy.
func (h *Hamiltonian[H, K]) Clone() *Hamiltonian[H, K] {
	out := &Hamiltonian[H, K]{terms: make(map[string]Term[H], len(h.terms)), capacity: h.capacity}
	for id, t := range h.terms {
		out.terms[id] = t
	}

	return out
}

// Equal reports exact equality of stored terms.
func (h *Hamiltonian[H, K]) Equal(other *Hamiltonian[H, K]) bool {
	if len(h.terms) != len(other.terms) {
		return false
	}
	for id, t := range h.terms {
		ot, ok := other.terms[id]
		if !ok || ot.Value != t.Value {
			return false
		}
	}

	return true
}

// AddHamiltonian accumulates every term of other into h, atomically.
func (h *Hamiltonian[H, K]) AddHamiltonian(other *Hamiltonian[H, K]) error {
	for _, t := range other.terms {
		if err := h.validate(t.Key, h.terms[t.Key.String()].Value+t.Value); err != nil {
			return err
		}
	}
	for _, t := range other.terms {
		mustNil(h.Add(t.Key, t.Value))
	}

	return nil
}

// ScalarMulReal scales every coefficient by the real factor r, which
// preserves hermiticity. For a general complex factor use
// ToOperator().ScalarMul — the result is no longer a Hamiltonian.
func (h *Hamiltonian[H, K]) ScalarMulReal(r float64) *Hamiltonian[H, K] {
	out := &Hamiltonian[H, K]{terms: make(map[string]Term[H], len(h.terms)), capacity: h.capacity}
	if r == 0 {
		return out
	}
	for id, t := range h.terms {
		out.terms[id] = Term[H]{Key: t.Key, Value: t.Value * coeff.FromFloat(r)}
	}

	return out
}

// Separate splits by a predicate on key shape into a strict partition,
// as Operator.Separate does.
func (h *Hamiltonian[H, K]) Separate(pred func(H) bool) (match, rest *Hamiltonian[H, K]) {
	match = &Hamiltonian[H, K]{terms: make(map[string]Term[H]), capacity: h.capacity}
	rest = &Hamiltonian[H, K]{terms: make(map[string]Term[H]), capacity: h.capacity}
	for id, t := range h.terms {
		if pred(t.Key) {
			match.terms[id] = t
		} else {
			rest.terms[id] = t
		}
	}

	return match, rest
}

// ToOperator expands the stored canonical halves into the full plain-key
// operator: each non-natural key contributes itself and its conjugate
// partner with conjugated coefficient.
func (h *Hamiltonian[H, K]) ToOperator() *Operator[K] {
	out := &Operator[K]{terms: make(map[string]Term[K]), capacity: h.capacity}
	for _, t := range h.terms {
		for _, ht := range t.Key.HermitianExpand() {
			v := t.Value
			if ht.Conjugated {
				v = v.Conj()
			}
			mustNil(out.Add(ht.Key, v*ht.Factor))
		}
	}

	return out
}
