// SPDX-License-Identifier: MIT

package operators

import "github.com/katalvlaran/qualg/coeff"

// Term is a weighted canonical key: one entry of an Operator, or one
// element of the weighted list produced by a product multiplication.
type Term[K any] struct {
	// Key is the canonical product index.
	Key K

	// Value is the term weight.
	Value coeff.Coefficient
}

// Key is the contract a canonical product index must satisfy to serve as
// an Operator key. Implementations are immutable value types; two keys
// constructed from permuted-but-equivalent inputs must be equal, print the
// same String and Compare as 0.
type Key[K any] interface {
	// String renders the canonical text form ("0Z1X", "c0a1", ...). Two
	// keys are equal iff their String forms coincide; containers hash on
	// this form.
	String() string

	// FromString parses the canonical text form. The receiver is ignored
	// (call on the zero value); it exists so generic code can construct
	// keys during deserialization.
	FromString(s string) (K, error)

	// Compare defines the total key order: negative if the receiver sorts
	// before other, zero iff equal, positive otherwise. The order is first
	// by number of non-identity entries, then lexicographically by
	// (site, operator) pairs.
	Compare(other K) int

	// Conjugate returns the hermitian conjugate as a canonical key plus
	// the scalar phase picked up by re-canonicalization.
	Conjugate() (K, coeff.Coefficient)

	// IsNaturalHermitian reports whether the key is its own hermitian
	// conjugate with phase +1.
	IsNaturalHermitian() bool

	// MinCapacity returns the smallest declared system size able to host
	// the key: highest referenced site/mode index plus one, or 0 for the
	// identity key.
	MinCapacity() int
}

// MulKey is a Key that additionally supports multiplication into a
// weighted list of canonical keys. Hermitian canonical halves do not
// implement it — their products escape to the plain key type.
type MulKey[K any] interface {
	Key[K]

	// Mul computes the operator product (receiver on the left) as a
	// weighted list of canonical keys. The list may be empty when the
	// product is algebraically zero, and carries multiple entries when
	// re-normal-ordering produces contraction terms.
	Mul(other K) ([]Term[K], error)
}

// HermTerm is one plain-key term of a hermitian canonical half's implied
// expansion. Factor multiplies the stored coefficient; Conjugated selects
// the conjugated coefficient instead.
type HermTerm[K any] struct {
	Key        K
	Factor     coeff.Coefficient
	Conjugated bool
}

// HermitianKey is the contract for hermitian-canonical keys: the stored
// "upper triangular" half of a self-adjoint-closed term. A hermitian key
// H denotes the plain-key sum returned by HermitianExpand; for a natural
// hermitian key that is the key itself, otherwise the key plus its
// conjugate partner with conjugated coefficient.
type HermitianKey[H, K any] interface {
	Key[H]

	// HermitianExpand returns the plain-key terms the canonical half
	// denotes. The expansion of a term (h, v) is the sum over entries of
	// Factor·v, or Factor·conj(v) where Conjugated is set.
	HermitianExpand() []HermTerm[K]
}
