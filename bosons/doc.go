// SPDX-License-Identifier: MIT

// Package bosons implements canonical products of bosonic ladder
// operators and their container instantiations.
//
// A BosonProduct is a normal-ordered word c…c a…a over non-negative
// modes: all creators (c) to the left of all annihilators (a), each
// mode list sorted non-decreasing with repeats allowed (bosonic modes
// commute among themselves). Multiplication re-normal-orders via Wick
// contractions, so a product of two keys expands into a weighted list:
// per shared mode with m annihilators meeting n creators, contraction
// order k contributes the combinatorial factor k!·C(m,k)·C(n,k).
//
// A HermitianBosonProduct stores the canonical half of a self-adjoint
// pair P + P†: the representative with creator list not exceeding the
// annihilator list in lexicographic mode order. It is the key type of
// BosonHamiltonian, which therefore never stores both a term and its
// conjugate separately.
//
// What the package provides:
//
//   - ✓ BosonProduct: canonical normal-ordered keys, parsing ("c0c1a2",
//     identity "I"), conjugation, Wick multiplication.
//   - ✓ HermitianBosonProduct: canonical self-adjoint halves with their
//     plain-key expansion.
//   - ✓ Aliases and constructors for BosonOperator, BosonHamiltonian,
//     BosonLindbladNoiseOperator and BosonLindbladOpenSystem.
package bosons
