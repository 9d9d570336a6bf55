// Package qualg is an in-memory algebra of quantum operators — spins,
// bosons, fermions and mixed systems — represented as weighted sums over
// canonical normal-ordered product indices.
//
// 🚀 What is qualg?
//
//	A deterministic, pure-Go library that brings together:
//		• Single-site algebras: Pauli {I,X,Y,Z}, decoherence {I,X,iY,Z},
//		  ladder {I,+,-,Z}, and bosonic/fermionic creation & annihilation
//		• Canonical product indices with exact multiplication laws,
//		  including fermionic anticommutation and bosonic commutator terms
//		• Generic Operator / Hamiltonian / Lindblad-noise / open-system
//		  containers with a strict never-store-zero invariant
//		• Jordan-Wigner fermion↔spin and boson-spin (Dicke) mappings
//		• Coordinate-list sparse-matrix and superoperator export
//		• Versioned JSON and CBOR serialization with legacy import
//
// ✨ Why choose qualg?
//
//   - Exact bookkeeping — every phase, sign and contraction is reproduced
//     by fixed algebraic tables, never by floating-point heuristics
//   - Rock-solid guarantees — canonical keys, total ordering, deterministic
//     iteration, sentinel errors matched via errors.Is
//   - Pure Go — no cgo, a single small codec dependency
//
// Under the hood, everything is organized into flat subpackages:
//
//	coeff/     — complex scalar coefficients with an exact zero test
//	operators/ — generic term containers, serialization, versioning
//	spins/     — Pauli, decoherence and plus/minus products + matrix export
//	bosons/    — bosonic products and hermitian canonical halves
//	fermions/  — fermionic products with Pauli-exclusion validation
//	mixed/     — products spanning spin, boson and fermion subsystems
//	mappings/  — Jordan-Wigner and boson-spin basis transformations
//
// Quick example:
//
//	p, _ := spins.ParsePauliProduct("0Z1X")
//	op := spins.NewPauliOperator()
//	_ = op.Set(p, coeff.FromFloat(0.5))
//
// Multiplying two operators is O(|left|·|right|·terms-per-product) with no
// internal shortcut; callers needing performance must pre-filter operand
// size. Dive into the package docs for the full algebraic contracts.
package qualg
