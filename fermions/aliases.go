// SPDX-License-Identifier: MIT

// Package fermions: container instantiations.

package fermions

import "github.com/katalvlaran/qualg/operators"

// FermionOperator is a weighted sum of fermion products.
type FermionOperator = operators.Operator[FermionProduct]

// FermionHamiltonian is a hermitian operator keyed by canonical halves.
type FermionHamiltonian = operators.Hamiltonian[HermitianFermionProduct, FermionProduct]

// FermionLindbladNoiseOperator is a Lindblad dissipator sum keyed by
// ordered pairs of fermion products.
type FermionLindbladNoiseOperator = operators.NoiseOperator[FermionProduct]

// FermionLindbladOpenSystem couples a FermionHamiltonian with a
// FermionLindbladNoiseOperator.
type FermionLindbladOpenSystem = operators.OpenSystem[HermitianFermionProduct, FermionProduct, FermionProduct]

// NewFermionOperator returns an empty FermionOperator.
func NewFermionOperator() *FermionOperator { return operators.NewOperator[FermionProduct]() }

// NewFermionOperatorWithCapacity returns an empty FermionOperator
// bounded to n modes.
func NewFermionOperatorWithCapacity(n int) (*FermionOperator, error) {
	return operators.NewOperatorWithCapacity[FermionProduct](n)
}

// NewFermionHamiltonian returns an empty FermionHamiltonian.
func NewFermionHamiltonian() *FermionHamiltonian {
	return operators.NewHamiltonian[HermitianFermionProduct, FermionProduct]()
}

// NewFermionHamiltonianWithCapacity returns an empty FermionHamiltonian
// bounded to n modes.
func NewFermionHamiltonianWithCapacity(n int) (*FermionHamiltonian, error) {
	return operators.NewHamiltonianWithCapacity[HermitianFermionProduct, FermionProduct](n)
}

// NewFermionLindbladNoiseOperator returns an empty noise operator.
func NewFermionLindbladNoiseOperator() *FermionLindbladNoiseOperator {
	return operators.NewNoiseOperator[FermionProduct]()
}

// NewFermionLindbladNoiseOperatorWithCapacity returns an empty noise
// operator bounded to n modes.
func NewFermionLindbladNoiseOperatorWithCapacity(n int) (*FermionLindbladNoiseOperator, error) {
	return operators.NewNoiseOperatorWithCapacity[FermionProduct](n)
}

// NewFermionLindbladOpenSystem returns an empty open system.
func NewFermionLindbladOpenSystem() *FermionLindbladOpenSystem {
	return operators.NewOpenSystem[HermitianFermionProduct, FermionProduct, FermionProduct]()
}

// GroupFermionLindbladOpenSystem combines existing system and noise
// parts, validating capacity compatibility.
func GroupFermionLindbladOpenSystem(
	system *FermionHamiltonian,
	noise *FermionLindbladNoiseOperator,
) (*FermionLindbladOpenSystem, error) {
	return operators.Group[HermitianFermionProduct, FermionProduct, FermionProduct](system, noise)
}

// LadderCountFilter builds a Separate predicate matching products with
// the given creator and annihilator counts.
func LadderCountFilter(creators, annihilators int) func(FermionProduct) bool {
	return func(p FermionProduct) bool {
		return p.NumberCreators() == creators && p.NumberAnnihilators() == annihilators
	}
}
