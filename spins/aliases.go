// SPDX-License-Identifier: MIT

// Package spins: container instantiations. One generic container serves
// every spin variant; these aliases and constructors give them their
// domain names.

package spins

import "github.com/katalvlaran/qualg/operators"

// PauliOperator is a weighted sum of Pauli products.
type PauliOperator = operators.Operator[PauliProduct]

// DecoherenceOperator is a weighted sum of decoherence products.
type DecoherenceOperator = operators.Operator[DecoherenceProduct]

// PlusMinusOperator is a weighted sum of ladder products.
type PlusMinusOperator = operators.Operator[PlusMinusProduct]

// PauliHamiltonian is a hermitian operator over Pauli products; all its
// coefficients are real since every Pauli product is self-adjoint.
type PauliHamiltonian = operators.Hamiltonian[PauliProduct, PauliProduct]

// PauliLindbladNoiseOperator is a Lindblad dissipator sum keyed by
// ordered pairs of decoherence products.
type PauliLindbladNoiseOperator = operators.NoiseOperator[DecoherenceProduct]

// PauliLindbladOpenSystem couples a PauliHamiltonian with a
// PauliLindbladNoiseOperator.
type PauliLindbladOpenSystem = operators.OpenSystem[PauliProduct, PauliProduct, DecoherenceProduct]

// NewPauliOperator returns an empty PauliOperator.
func NewPauliOperator() *PauliOperator { return operators.NewOperator[PauliProduct]() }

// NewPauliOperatorWithCapacity returns an empty PauliOperator bounded to
// n spins.
func NewPauliOperatorWithCapacity(n int) (*PauliOperator, error) {
	return operators.NewOperatorWithCapacity[PauliProduct](n)
}

// NewDecoherenceOperator returns an empty DecoherenceOperator.
func NewDecoherenceOperator() *DecoherenceOperator {
	return operators.NewOperator[DecoherenceProduct]()
}

// NewPlusMinusOperator returns an empty PlusMinusOperator.
func NewPlusMinusOperator() *PlusMinusOperator {
	return operators.NewOperator[PlusMinusProduct]()
}

// NewPauliHamiltonian returns an empty PauliHamiltonian.
func NewPauliHamiltonian() *PauliHamiltonian {
	return operators.NewHamiltonian[PauliProduct, PauliProduct]()
}

// NewPauliHamiltonianWithCapacity returns an empty PauliHamiltonian
// bounded to n spins.
func NewPauliHamiltonianWithCapacity(n int) (*PauliHamiltonian, error) {
	return operators.NewHamiltonianWithCapacity[PauliProduct, PauliProduct](n)
}

// NewPauliLindbladNoiseOperator returns an empty noise operator.
func NewPauliLindbladNoiseOperator() *PauliLindbladNoiseOperator {
	return operators.NewNoiseOperator[DecoherenceProduct]()
}

// NewPauliLindbladNoiseOperatorWithCapacity returns an empty noise
// operator bounded to n spins.
func NewPauliLindbladNoiseOperatorWithCapacity(n int) (*PauliLindbladNoiseOperator, error) {
	return operators.NewNoiseOperatorWithCapacity[DecoherenceProduct](n)
}

// NewPauliLindbladOpenSystem returns an empty open system.
func NewPauliLindbladOpenSystem() *PauliLindbladOpenSystem {
	return operators.NewOpenSystem[PauliProduct, PauliProduct, DecoherenceProduct]()
}

// GroupPauliLindbladOpenSystem combines existing system and noise parts,
// validating capacity compatibility.
func GroupPauliLindbladOpenSystem(
	system *PauliHamiltonian,
	noise *PauliLindbladNoiseOperator,
) (*PauliLindbladOpenSystem, error) {
	return operators.Group[PauliProduct, PauliProduct, DecoherenceProduct](system, noise)
}

// SpinCountFilter builds a Separate predicate matching products with
// exactly n non-identity entries.
func SpinCountFilter(n int) func(PauliProduct) bool {
	return func(p PauliProduct) bool { return p.Len() == n }
}

// DecoherenceCountFilter builds a two-sided Separate predicate for noise
// operators, matching pairs with exactly (left, right) non-identity
// entries per side.
func DecoherenceCountFilter(left, right int) func(DecoherenceProduct, DecoherenceProduct) bool {
	return func(l, r DecoherenceProduct) bool { return l.Len() == left && r.Len() == right }
}
