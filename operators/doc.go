// SPDX-License-Identifier: MIT

// Package operators provides the generic term containers of qualg: the
// plain Operator, the hermitian-restricted Hamiltonian, the Lindblad
// NoiseOperator and the OpenSystem pair, all parameterized over a
// canonical product-index key type.
//
// One container, many algebras:
//
//	Operator[K]         — map from canonical key K to coeff.Coefficient
//	Hamiltonian[H, K]   — hermitian-canonical keys H, expanded over K
//	NoiseOperator[K]    — ordered (left, right) key pairs
//	OpenSystem[H, K, N] — a Hamiltonian part coupled with a noise part
//
// The concrete key types live in the spins, bosons, fermions and mixed
// packages; each domain package exports plain type aliases such as
// spins.PauliOperator for the instantiations it supports. This collapses
// what would otherwise be near-identical per-variant container code into
// a single implementation.
//
// Invariants (enforced, not best-effort):
//
//   - Zero removal: an exactly-zero coefficient is never stored. Set with
//     zero removes, Add that cancels removes.
//   - Atomicity: bulk operations (AddOperator, deserialization) validate
//     before mutating; on error the target is unchanged.
//   - Capacity: a container constructed with a declared capacity rejects
//     any key whose MinCapacity exceeds it (ErrCapacityExceeded).
//   - Determinism: Keys, Terms and all serialized forms iterate in the
//     total key order defined by Compare.
//
// Complexity: Mul is O(|left|·|right|·terms-per-product-multiply) with no
// shortcut; there is no internal bound or timeout. Callers multiplying
// large operators must pre-filter operand size themselves.
//
// Concurrency: containers have no internal locking. Share read-only
// references freely; serialize any mutation per container instance.
package operators
