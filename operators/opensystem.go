// SPDX-License-Identifier: MIT

package operators

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
)

// OpenSystem couples a coherent Hamiltonian part with a Lindblad noise
// part over the same system, modeling
//
//	dρ/dt = -i[H, ρ] + Σ v_(L,R) (L ρ R† − ½{R†L, ρ})
//
// Type parameters: H is the hermitian canonical key of the system part,
// K its plain expansion key, N the key type of the noise part (for spins
// the noise side is keyed by decoherence products, so N differs from K).
//
// The two parts are exposed read-only via System and Noise (deep copies);
// mutation goes through SystemAdd / NoiseAdd, which route to the correct
// sub-container.
type OpenSystem[H HermitianKey[H, K], K Key[K], N Key[N]] struct {
	system *Hamiltonian[H, K]
	noise  *NoiseOperator[N]
}

// NewOpenSystem returns an empty open system without a declared capacity.
func NewOpenSystem[H HermitianKey[H, K], K Key[K], N Key[N]]() *OpenSystem[H, K, N] {
	return &OpenSystem[H, K, N]{
		system: NewHamiltonian[H, K](),
		noise:  NewNoiseOperator[N](),
	}
}

// Group combines an existing Hamiltonian part and noise part into an open
// system after validating that their declared capacities are compatible:
// equal when both declare one; when only one declares a bound, the other
// part's current extent must fit under it. The parts are deep-copied, and
// an undeclared side adopts the declared bound.
func Group[H HermitianKey[H, K], K Key[K], N Key[N]](
	system *Hamiltonian[H, K],
	noise *NoiseOperator[N],
) (*OpenSystem[H, K, N], error) {
	sysCap, sysDeclared := system.Capacity()
	noiseCap, noiseDeclared := noise.Capacity()
	switch {
	case sysDeclared && noiseDeclared && sysCap != noiseCap:
		return nil, fmt.Errorf("system declares %d, noise declares %d: %w",
			sysCap, noiseCap, ErrCapacityMismatch)
	case sysDeclared && !noiseDeclared && noise.CurrentCapacity() > sysCap:
		return nil, fmt.Errorf("noise occupies %d of %d declared sites: %w",
			noise.CurrentCapacity(), sysCap, ErrCapacityMismatch)
	case !sysDeclared && noiseDeclared && system.CurrentCapacity() > noiseCap:
		return nil, fmt.Errorf("system occupies %d of %d declared sites: %w",
			system.CurrentCapacity(), noiseCap, ErrCapacityMismatch)
	}

	sys := system.Clone()
	noi := noise.Clone()
	if sysDeclared && !noiseDeclared {
		noi.capacity = sysCap
	}
	if noiseDeclared && !sysDeclared {
		sys.capacity = noiseCap
	}

	return &OpenSystem[H, K, N]{system: sys, noise: noi}, nil
}

// System returns a deep copy of the coherent part.
func (s *OpenSystem[H, K, N]) System() *Hamiltonian[H, K] { return s.system.Clone() }

// Noise returns a deep copy of the noise part.
func (s *OpenSystem[H, K, N]) Noise() *NoiseOperator[N] { return s.noise.Clone() }

// Capacity returns the declared capacity and whether one was declared.
// Group guarantees both parts agree.
func (s *OpenSystem[H, K, N]) Capacity() (int, bool) { return s.system.Capacity() }

// CurrentCapacity returns the smallest system size hosting both parts.
func (s *OpenSystem[H, K, N]) CurrentCapacity() int {
	sys, noi := s.system.CurrentCapacity(), s.noise.CurrentCapacity()
	if noi > sys {
		return noi
	}

	return sys
}

// SystemAdd accumulates a term into the Hamiltonian part, applying the
// hermitian validation rules of Hamiltonian.Add.
func (s *OpenSystem[H, K, N]) SystemAdd(k H, v coeff.Coefficient) error {
	return s.system.Add(k, v)
}

// NoiseAdd accumulates a dissipator term into the noise part.
func (s *OpenSystem[H, K, N]) NoiseAdd(left, right N, v coeff.Coefficient) error {
	return s.noise.Add(left, right, v)
}

// Clone returns an independent deep copy.
func (s *OpenSystem[H, K, N]) Clone() *OpenSystem[H, K, N] {
	return &OpenSystem[H, K, N]{system: s.system.Clone(), noise: s.noise.Clone()}
}

// Equal reports exact equality of both parts.
func (s *OpenSystem[H, K, N]) Equal(other *OpenSystem[H, K, N]) bool {
	return s.system.Equal(other.system) && s.noise.Equal(other.noise)
}
