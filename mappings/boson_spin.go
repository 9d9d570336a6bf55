// SPDX-License-Identifier: MIT

package mappings

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qualg/bosons"
	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/spins"
)

// DickeOptions configures the boson-spin mapping: each bosonic mode i
// is represented by SpinsPerMode replica spins at sites
// i*SpinsPerMode … i*SpinsPerMode+SpinsPerMode-1.
type DickeOptions struct {
	// SpinsPerMode is the replica count N per bosonic mode; larger N
	// captures higher occupations of the truncated mode.
	SpinsPerMode int
}

// DefaultDickeOptions returns the single-replica mapping.
func DefaultDickeOptions() DickeOptions {
	return DickeOptions{SpinsPerMode: 1}
}

func (o DickeOptions) validate() error {
	if o.SpinsPerMode < 1 {
		return fmt.Errorf("spins per mode %d: %w", o.SpinsPerMode, ErrBadSpinsPerMode)
	}

	return nil
}

// site returns the replica spin site of (mode, replica).
func (o DickeOptions) site(mode, replica int) int {
	return mode*o.SpinsPerMode + replica
}

// occupationShape reports a key of shape c_i a_i and its mode.
func occupationShape(creators, annihilators []int) (int, bool) {
	if len(creators) == 1 && len(annihilators) == 1 && creators[0] == annihilators[0] {
		return creators[0], true
	}

	return 0, false
}

// displacementShape reports a canonical-half key of shape a_i (denoting
// b_i + b_i†) and its mode.
func displacementShape(creators, annihilators []int) (int, bool) {
	if len(creators) == 0 && len(annihilators) == 1 {
		return annihilators[0], true
	}

	return 0, false
}

// addOccupationImage adds v·Σ_j (I+Z_site)/2 over the replicas of mode.
func addOccupationImage(out *spins.PauliHamiltonian, mode int, v coeff.Coefficient, opts DickeOptions) error {
	n := coeff.FromFloat(float64(opts.SpinsPerMode))
	if err := out.Add(spins.NewPauliProduct(), v*n*coeff.FromFloat(0.5)); err != nil {
		return err
	}
	for j := 0; j < opts.SpinsPerMode; j++ {
		z := spins.NewPauliProduct().Z(opts.site(mode, j))
		if err := out.Add(z, v*coeff.FromFloat(0.5)); err != nil {
			return err
		}
	}

	return nil
}

// BosonHamiltonianToSpin maps a bosonic hamiltonian onto replica spins:
// occupation halves c_i a_i become Σ_j (I+Z)/2 and displacement halves
// a_i (denoting b_i + b_i†) become (1/√N) Σ_j X_j. The identity maps to
// itself; any other canonical-half shape has no image.
func BosonHamiltonianToSpin(h *bosons.BosonHamiltonian, opts DickeOptions) (*spins.PauliHamiltonian, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	out := spins.NewPauliHamiltonian()
	for _, t := range h.Terms() {
		creators, annihilators := t.Key.Creators(), t.Key.Annihilators()
		if len(creators) == 0 && len(annihilators) == 0 {
			if err := out.Add(spins.NewPauliProduct(), t.Value); err != nil {
				return nil, err
			}

			continue
		}
		if mode, ok := occupationShape(creators, annihilators); ok {
			if err := addOccupationImage(out, mode, t.Value, opts); err != nil {
				return nil, err
			}

			continue
		}
		if mode, ok := displacementShape(creators, annihilators); ok {
			// A complex weight v denotes v·b + v̄·b†, which is no longer
			// proportional to the quadrature b + b†.
			if !t.Value.IsReal() {
				return nil, fmt.Errorf("key %q with complex weight: %w", t.Key.String(), ErrUnsupportedTermShape)
			}
			scale := coeff.FromFloat(1 / math.Sqrt(float64(opts.SpinsPerMode)))
			for j := 0; j < opts.SpinsPerMode; j++ {
				x := spins.NewPauliProduct().SetPauli(opts.site(mode, j), spins.PauliX)
				if err := out.Add(x, t.Value*scale); err != nil {
					return nil, err
				}
			}

			continue
		}

		return nil, fmt.Errorf("key %q: %w", t.Key.String(), ErrUnsupportedTermShape)
	}

	return out, nil
}

// BosonOperatorToSpin maps a bosonic operator onto replica spins. Plain
// keys carry no implied conjugate, so only the identity and occupation
// shapes c_i a_i have images here; a lone ladder letter is not
// hermitian and does not correspond to any replica spin observable.
func BosonOperatorToSpin(op *bosons.BosonOperator, opts DickeOptions) (*spins.PauliOperator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	out := spins.NewPauliOperator()
	half := coeff.FromFloat(0.5)
	for _, t := range op.Terms() {
		creators, annihilators := t.Key.Creators(), t.Key.Annihilators()
		if len(creators) == 0 && len(annihilators) == 0 {
			if err := out.Add(spins.NewPauliProduct(), t.Value); err != nil {
				return nil, err
			}

			continue
		}
		mode, ok := occupationShape(creators, annihilators)
		if !ok {
			return nil, fmt.Errorf("key %q: %w", t.Key.String(), ErrUnsupportedTermShape)
		}
		n := coeff.FromFloat(float64(opts.SpinsPerMode))
		if err := out.Add(spins.NewPauliProduct(), t.Value*n*half); err != nil {
			return nil, err
		}
		for j := 0; j < opts.SpinsPerMode; j++ {
			z := spins.NewPauliProduct().Z(opts.site(mode, j))
			if err := out.Add(z, t.Value*half); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
