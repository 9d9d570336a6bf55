// SPDX-License-Identifier: MIT

// Package fermions implements canonical products of fermionic ladder
// operators and their container instantiations.
//
// A FermionProduct is a normal-ordered word c…c a…a over non-negative
// modes with each mode list strictly increasing: Pauli exclusion kills
// any repeated ladder operator, and reordering anticommuting factors
// flips signs, so constructors refuse to reorder on the caller's
// behalf. Multiplication re-normal-orders the concatenated word with
// the canonical anticommutation relation {a_i, c_j} = δ_ij, producing
// contraction terms with alternating signs.
//
// A HermitianFermionProduct stores the canonical half of a self-adjoint
// pair P + P†, with the same orientation rule as the bosonic variant
// plus the fermionic conjugation sign folded into the expansion.
//
// What the package provides:
//
//   - ✓ FermionProduct: canonical keys, parsing ("c0a0a2", identity
//     "I"), signed conjugation, normal-ordering multiplication.
//   - ✓ HermitianFermionProduct: canonical self-adjoint halves.
//   - ✓ Aliases and constructors for FermionOperator,
//     FermionHamiltonian, FermionLindbladNoiseOperator and
//     FermionLindbladOpenSystem.
package fermions
