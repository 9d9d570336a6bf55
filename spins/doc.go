// SPDX-License-Identifier: MIT

// Package spins implements the spin-1/2 half of the qualg algebra: the
// single-site Pauli, decoherence and plus/minus operator sets, their
// canonical product indices, the operator containers instantiated over
// them, conversions among the three single-site bases, and coordinate-list
// sparse-matrix export.
//
// Single-site bases:
//
//	Pauli       {I, X, Y, Z}   — hermitian; closed under products up to
//	                             phases in {±1, ±i}
//	Decoherence {I, X, iY, Z}  — iY absorbs a factor of i so products stay
//	                             within the set up to real signs ±1
//	PlusMinus   {I, +, -, Z}   — ladder basis; NOT closed under products
//	                             (σ⁺σ⁻ = (I+Z)/2), so multiplication
//	                             returns a weighted list like the
//	                             fermionic algebras do
//
// A product index ("0Z1X") stores only non-identity entries, sorted by
// site; absent sites implicitly carry the identity. Equality, ordering
// and hashing all follow the canonical sorted form, so permuted
// construction orders produce identical keys.
//
// Containers are aliases of the generic ones in package operators:
// PauliOperator, PauliHamiltonian, PauliLindbladNoiseOperator (keyed by
// decoherence product pairs) and PauliLindbladOpenSystem.
//
// Matrix export produces coordinate-list sparse matrices on the full
// 2^n-dimensional Hilbert space (4^n for superoperators), with entries in
// deterministic row-major order. Site s maps to bit s of the basis-state
// index. Export is exponential in n — that is the physics, not a bug.
package spins
