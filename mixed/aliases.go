// SPDX-License-Identifier: MIT

// Package mixed: container instantiations.

package mixed

import "github.com/katalvlaran/qualg/operators"

// MixedOperator is a weighted sum of mixed products.
type MixedOperator = operators.Operator[MixedProduct]

// MixedHamiltonian is a hermitian operator keyed by canonical halves.
type MixedHamiltonian = operators.Hamiltonian[HermitianMixedProduct, MixedProduct]

// MixedLindbladNoiseOperator is a Lindblad dissipator sum keyed by
// ordered pairs of mixed products.
type MixedLindbladNoiseOperator = operators.NoiseOperator[MixedProduct]

// MixedLindbladOpenSystem couples a MixedHamiltonian with a
// MixedLindbladNoiseOperator.
type MixedLindbladOpenSystem = operators.OpenSystem[HermitianMixedProduct, MixedProduct, MixedProduct]

// NewMixedOperator returns an empty MixedOperator.
func NewMixedOperator() *MixedOperator { return operators.NewOperator[MixedProduct]() }

// NewMixedOperatorWithCapacity returns an empty MixedOperator with a
// per-subsystem bound.
func NewMixedOperatorWithCapacity(n int) (*MixedOperator, error) {
	return operators.NewOperatorWithCapacity[MixedProduct](n)
}

// NewMixedHamiltonian returns an empty MixedHamiltonian.
func NewMixedHamiltonian() *MixedHamiltonian {
	return operators.NewHamiltonian[HermitianMixedProduct, MixedProduct]()
}

// NewMixedHamiltonianWithCapacity returns an empty MixedHamiltonian with
// a per-subsystem bound.
func NewMixedHamiltonianWithCapacity(n int) (*MixedHamiltonian, error) {
	return operators.NewHamiltonianWithCapacity[HermitianMixedProduct, MixedProduct](n)
}

// NewMixedLindbladNoiseOperator returns an empty noise operator.
func NewMixedLindbladNoiseOperator() *MixedLindbladNoiseOperator {
	return operators.NewNoiseOperator[MixedProduct]()
}

// NewMixedLindbladNoiseOperatorWithCapacity returns an empty noise
// operator with a per-subsystem bound.
func NewMixedLindbladNoiseOperatorWithCapacity(n int) (*MixedLindbladNoiseOperator, error) {
	return operators.NewNoiseOperatorWithCapacity[MixedProduct](n)
}

// NewMixedLindbladOpenSystem returns an empty open system.
func NewMixedLindbladOpenSystem() *MixedLindbladOpenSystem {
	return operators.NewOpenSystem[HermitianMixedProduct, MixedProduct, MixedProduct]()
}

// GroupMixedLindbladOpenSystem combines existing system and noise parts,
// validating capacity compatibility.
func GroupMixedLindbladOpenSystem(
	system *MixedHamiltonian,
	noise *MixedLindbladNoiseOperator,
) (*MixedLindbladOpenSystem, error) {
	return operators.Group[HermitianMixedProduct, MixedProduct, MixedProduct](system, noise)
}

// LayoutFilter builds a Separate predicate matching products on the
// given composite layout.
func LayoutFilter(spinCount, bosonCount, fermionCount int) func(MixedProduct) bool {
	return func(p MixedProduct) bool {
		return p.NumberSpinSubsystems() == spinCount &&
			p.NumberBosonSubsystems() == bosonCount &&
			p.NumberFermionSubsystems() == fermionCount
	}
}
