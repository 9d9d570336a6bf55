// SPDX-License-Identifier: MIT

package operators

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qualg/coeff"
)

// unboundedCapacity marks a container without a declared capacity bound.
const unboundedCapacity = -1

// Operator is a weighted sum over canonical product indices: a mapping
// from key K to coeff.Coefficient. The zero coefficient is never stored.
//
// Operators are not safe for concurrent mutation; see the package doc.
type Operator[K Key[K]] struct {
	terms    map[string]Term[K]
	capacity int
}

// NewOperator returns an empty Operator without a declared capacity.
func NewOperator[K Key[K]]() *Operator[K] {
	return &Operator[K]{terms: make(map[string]Term[K]), capacity: unboundedCapacity}
}

// NewOperatorWithCapacity returns an empty Operator whose keys must fit
// within n sites/modes. Returns ErrBadCapacity for negative n.
func NewOperatorWithCapacity[K Key[K]](n int) (*Operator[K], error) {
	if n < 0 {
		return nil, fmt.Errorf("capacity %d: %w", n, ErrBadCapacity)
	}

	return &Operator[K]{terms: make(map[string]Term[K]), capacity: n}, nil
}

// Capacity returns the declared capacity and whether one was declared.
func (o *Operator[K]) Capacity() (int, bool) {
	return o.capacity, o.capacity != unboundedCapacity
}

// CurrentCapacity returns the smallest system size able to host every
// stored key (0 for an empty or identity-only operator). It is derived by
// scanning keys, independent of any declared capacity.
func (o *Operator[K]) CurrentCapacity() int {
	maxCap := 0
	for _, t := range o.terms {
		if c := t.Key.MinCapacity(); c > maxCap {
			maxCap = c
		}
	}

	return maxCap
}

// validateKey rejects keys that do not fit the declared capacity.
func (o *Operator[K]) validateKey(k K) error {
	if o.capacity != unboundedCapacity && k.MinCapacity() > o.capacity {
		return fmt.Errorf("key %s needs %d of %d sites: %w",
			k.String(), k.MinCapacity(), o.capacity, ErrCapacityExceeded)
	}

	return nil
}

// Set replaces the coefficient stored for k. An exactly-zero value
// removes the entry if present. The operator is unchanged on error.
func (o *Operator[K]) Set(k K, v coeff.Coefficient) error {
	if err := o.validateKey(k); err != nil {
		return err
	}
	id := k.String()
	if v.IsZero() {
		delete(o.terms, id)

		return nil
	}
	o.terms[id] = Term[K]{Key: k, Value: v}

	return nil
}

// Add accumulates v into the coefficient stored for k. A net-zero result
// removes the entry. The operator is unchanged on error.
func (o *Operator[K]) Add(k K, v coeff.Coefficient) error {
	if err := o.validateKey(k); err != nil {
		return err
	}
	id := k.String()
	sum := o.terms[id].Value + v
	if sum.IsZero() {
		delete(o.terms, id)

		return nil
	}
	o.terms[id] = Term[K]{Key: k, Value: sum}

	return nil
}

// Get returns the coefficient stored for k, or the additive identity if
// absent. Get never fails.
func (o *Operator[K]) Get(k K) coeff.Coefficient {
	return o.terms[k.String()].Value
}

// Len returns the number of stored terms.
func (o *Operator[K]) Len() int { return len(o.terms) }

// IsEmpty reports whether no term is stored.
func (o *Operator[K]) IsEmpty() bool { return len(o.terms) == 0 }

// Keys returns all stored keys in the total key order.
func (o *Operator[K]) Keys() []K {
	keys := make([]K, 0, len(o.terms))
	for _, t := range o.terms {
		keys = append(keys, t.Key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	return keys
}

// Terms returns all stored terms in the total key order.
func (o *Operator[K]) Terms() []Term[K] {
	keys := o.Keys()
	terms := make([]Term[K], 0, len(keys))
	for _, k := range keys {
		terms = append(terms, o.terms[k.String()])
	}

	return terms
}

// Clone returns an independent deep copy.
func (o *Operator[K]) Clone() *Operator[K] {
	out := &Operator[K]{terms: make(map[string]Term[K], len(o.terms)), capacity: o.capacity}
	for id, t := range o.terms {
		out.terms[id] = t
	}

	return out
}

// Equal reports exact equality of stored terms. Declared capacities are
// not part of operator identity.
func (o *Operator[K]) Equal(other *Operator[K]) bool {
	if len(o.terms) != len(other.terms) {
		return false
	}
	for id, t := range o.terms {
		ot, ok := other.terms[id]
		if !ok || ot.Value != t.Value {
			return false
		}
	}

	return true
}

// ScalarMul returns a new operator with every coefficient multiplied by
// c. Multiplying by zero yields an empty operator (zero removal applies
// after scaling).
func (o *Operator[K]) ScalarMul(c coeff.Coefficient) *Operator[K] {
	out := &Operator[K]{terms: make(map[string]Term[K], len(o.terms)), capacity: o.capacity}
	if c.IsZero() {
		return out
	}
	for id, t := range o.terms {
		out.terms[id] = Term[K]{Key: t.Key, Value: t.Value * c}
	}

	return out
}

// AddOperator accumulates every term of other into o. Validation runs
// over all of other's keys before any mutation, so on error o is
// unchanged (atomicity).
func (o *Operator[K]) AddOperator(other *Operator[K]) error {
	for _, t := range other.terms {
		if err := o.validateKey(t.Key); err != nil {
			return err
		}
	}
	for _, t := range other.terms {
		// Keys pre-validated; Add cannot fail here.
		mustNil(o.Add(t.Key, t.Value))
	}

	return nil
}

// HermitianConjugate returns the hermitian conjugate operator: every key
// conjugated (with its re-canonicalization phase) and every coefficient
// complex-conjugated.
func (o *Operator[K]) HermitianConjugate() *Operator[K] {
	out := &Operator[K]{terms: make(map[string]Term[K], len(o.terms)), capacity: o.capacity}
	for _, t := range o.terms {
		k, phase := t.Key.Conjugate()
		mustNil(out.Add(k, t.Value.Conj()*phase))
	}

	return out
}

// Truncate returns a new operator keeping only terms with |coefficient|
// at or above eps. Truncation is by magnitude only, never by key shape.
func (o *Operator[K]) Truncate(eps float64) *Operator[K] {
	out := &Operator[K]{terms: make(map[string]Term[K]), capacity: o.capacity}
	for id, t := range o.terms {
		if t.Value.Abs() >= eps {
			out.terms[id] = t
		}
	}

	return out
}

// Separate splits the operator into (match, rest) by a predicate on key
// shape: every stored term lands in exactly one output, none duplicated,
// none dropped. The predicate must not inspect coefficients.
//
// Re-insertion into the outputs cannot fail (the shapes were validated on
// the way into o); a failure there is an internal invariant violation and
// panics.
func (o *Operator[K]) Separate(pred func(K) bool) (match, rest *Operator[K]) {
	match = &Operator[K]{terms: make(map[string]Term[K]), capacity: o.capacity}
	rest = &Operator[K]{terms: make(map[string]Term[K]), capacity: o.capacity}
	for id, t := range o.terms {
		if pred(t.Key) {
			match.terms[id] = t
		} else {
			rest.terms[id] = t
		}
	}

	return match, rest
}

// Mul computes the operator product a·b: for every key pair the product
// index multiplication is expanded, scaled by both coefficients and
// accumulated. Colliding result keys sum; exact cancellations vanish.
//
// Complexity: O(|a|·|b|·terms-per-product-multiply). No shortcut exists.
//
// When both operands declare the same capacity the product inherits it:
// index multiplication never reaches past the sites of its operands.
// Otherwise the result is unbounded.
func Mul[K MulKey[K]](a, b *Operator[K]) (*Operator[K], error) {
	out := NewOperator[K]()
	if a.capacity != unboundedCapacity && a.capacity == b.capacity {
		out.capacity = a.capacity
	}
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			products, err := ta.Key.Mul(tb.Key)
			if err != nil {
				return nil, err
			}
			for _, p := range products {
				if err = out.Add(p.Key, p.Value*ta.Value*tb.Value); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// mustNil panics on a non-nil error. Reserved for code paths where the
// inputs were validated by construction and failure would mean a broken
// internal invariant, not a caller mistake.
func mustNil(err error) {
	if err != nil {
		panic(fmt.Sprintf("qualg: internal invariant violated: %v", err))
	}
}
