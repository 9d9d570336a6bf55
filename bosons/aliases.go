// SPDX-License-Identifier: MIT

// Package bosons: container instantiations.

package bosons

import "github.com/katalvlaran/qualg/operators"

// BosonOperator is a weighted sum of boson products.
type BosonOperator = operators.Operator[BosonProduct]

// BosonHamiltonian is a hermitian operator keyed by canonical halves;
// its full operator expansion adds the conjugate of every non-natural
// half.
type BosonHamiltonian = operators.Hamiltonian[HermitianBosonProduct, BosonProduct]

// BosonLindbladNoiseOperator is a Lindblad dissipator sum keyed by
// ordered pairs of boson products.
type BosonLindbladNoiseOperator = operators.NoiseOperator[BosonProduct]

// BosonLindbladOpenSystem couples a BosonHamiltonian with a
// BosonLindbladNoiseOperator.
type BosonLindbladOpenSystem = operators.OpenSystem[HermitianBosonProduct, BosonProduct, BosonProduct]

// NewBosonOperator returns an empty BosonOperator.
func NewBosonOperator() *BosonOperator { return operators.NewOperator[BosonProduct]() }

// NewBosonOperatorWithCapacity returns an empty BosonOperator bounded to
// n modes.
func NewBosonOperatorWithCapacity(n int) (*BosonOperator, error) {
	return operators.NewOperatorWithCapacity[BosonProduct](n)
}

// NewBosonHamiltonian returns an empty BosonHamiltonian.
func NewBosonHamiltonian() *BosonHamiltonian {
	return operators.NewHamiltonian[HermitianBosonProduct, BosonProduct]()
}

// NewBosonHamiltonianWithCapacity returns an empty BosonHamiltonian
// bounded to n modes.
func NewBosonHamiltonianWithCapacity(n int) (*BosonHamiltonian, error) {
	return operators.NewHamiltonianWithCapacity[HermitianBosonProduct, BosonProduct](n)
}

// NewBosonLindbladNoiseOperator returns an empty noise operator.
func NewBosonLindbladNoiseOperator() *BosonLindbladNoiseOperator {
	return operators.NewNoiseOperator[BosonProduct]()
}

// NewBosonLindbladNoiseOperatorWithCapacity returns an empty noise
// operator bounded to n modes.
func NewBosonLindbladNoiseOperatorWithCapacity(n int) (*BosonLindbladNoiseOperator, error) {
	return operators.NewNoiseOperatorWithCapacity[BosonProduct](n)
}

// NewBosonLindbladOpenSystem returns an empty open system.
func NewBosonLindbladOpenSystem() *BosonLindbladOpenSystem {
	return operators.NewOpenSystem[HermitianBosonProduct, BosonProduct, BosonProduct]()
}

// GroupBosonLindbladOpenSystem combines existing system and noise parts,
// validating capacity compatibility.
func GroupBosonLindbladOpenSystem(
	system *BosonHamiltonian,
	noise *BosonLindbladNoiseOperator,
) (*BosonLindbladOpenSystem, error) {
	return operators.Group[HermitianBosonProduct, BosonProduct, BosonProduct](system, noise)
}

// LadderCountFilter builds a Separate predicate matching products with
// the given creator and annihilator counts.
func LadderCountFilter(creators, annihilators int) func(BosonProduct) bool {
	return func(p BosonProduct) bool {
		return p.NumberCreators() == creators && p.NumberAnnihilators() == annihilators
	}
}
