// SPDX-License-Identifier: MIT

package mappings

import (
	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/fermions"
	"github.com/katalvlaran/qualg/operators"
	"github.com/katalvlaran/qualg/spins"
)

// mustNoErr panics on an impossible error: insertions into fresh
// unbounded containers cannot fail.
func mustNoErr(err error) {
	if err != nil {
		panic("mappings: internal invariant violated: " + err.Error())
	}
}

// jwLadderImage returns the spin image of one fermionic ladder letter on
// mode p: the Z-string on sites below p times (X_p - iY_p)/2 for a
// creator, (X_p + iY_p)/2 for an annihilator.
func jwLadderImage(mode int, creator bool) *spins.PauliOperator {
	chain := spins.NewPauliProduct()
	for i := 0; i < mode; i++ {
		chain = chain.Z(i)
	}
	x := chain.SetPauli(mode, spins.PauliX)
	y := chain.SetPauli(mode, spins.PauliY)

	out := spins.NewPauliOperator()
	mustNoErr(out.Set(x, coeff.FromFloat(0.5)))
	if creator {
		mustNoErr(out.Set(y, coeff.FromParts(0, -0.5)))
	} else {
		mustNoErr(out.Set(y, coeff.FromParts(0, 0.5)))
	}

	return out
}

// identityPauliOperator returns the multiplicative unit.
func identityPauliOperator() *spins.PauliOperator {
	out := spins.NewPauliOperator()
	mustNoErr(out.Set(spins.NewPauliProduct(), coeff.One))

	return out
}

// FermionProductToPauliOperator maps one normal-ordered fermionic word
// to its Jordan-Wigner spin image by multiplying the per-letter images
// in word order.
func FermionProductToPauliOperator(p fermions.FermionProduct) (*spins.PauliOperator, error) {
	out := identityPauliOperator()
	var err error
	for _, m := range p.Creators() {
		if out, err = operators.Mul(out, jwLadderImage(m, true)); err != nil {
			return nil, err
		}
	}
	for _, m := range p.Annihilators() {
		if out, err = operators.Mul(out, jwLadderImage(m, false)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// JordanWignerFermionOperator maps a fermionic operator term-by-term to
// its spin image.
func JordanWignerFermionOperator(op *fermions.FermionOperator) (*spins.PauliOperator, error) {
	out := spins.NewPauliOperator()
	for _, t := range op.Terms() {
		image, err := FermionProductToPauliOperator(t.Key)
		if err != nil {
			return nil, err
		}
		if err := out.AddOperator(image.ScalarMul(t.Value)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// JordanWignerFermionHamiltonian maps a fermionic hamiltonian to a spin
// hamiltonian. The image of a self-adjoint operator has real Pauli
// coefficients, and the arithmetic along the way is exact on dyadic
// values, so the hermiticity check cannot trip on rounding.
func JordanWignerFermionHamiltonian(h *fermions.FermionHamiltonian) (*spins.PauliHamiltonian, error) {
	image, err := JordanWignerFermionOperator(h.ToOperator())
	if err != nil {
		return nil, err
	}
	out := spins.NewPauliHamiltonian()
	for _, t := range image.Terms() {
		if err := out.Set(t.Key, t.Value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// JordanWignerFermionNoiseOperator maps a fermionic dissipator sum
// bilinearly: each pair (L, R) expands over the term pairs of the two
// spin images, with the right factor conjugated and both images
// rewritten in the decoherence basis.
func JordanWignerFermionNoiseOperator(
	noise *fermions.FermionLindbladNoiseOperator,
) (*spins.PauliLindbladNoiseOperator, error) {
	out := spins.NewPauliLindbladNoiseOperator()
	for _, t := range noise.Terms() {
		leftImage, err := FermionProductToPauliOperator(t.Pair.Left)
		if err != nil {
			return nil, err
		}
		rightImage, err := FermionProductToPauliOperator(t.Pair.Right)
		if err != nil {
			return nil, err
		}
		for _, lt := range leftImage.Terms() {
			dl, fl := spins.PauliProductToDecoherence(lt.Key)
			for _, rt := range rightImage.Terms() {
				dr, fr := spins.PauliProductToDecoherence(rt.Key)
				v := t.Value * lt.Value * fl * (rt.Value * fr).Conj()
				if err := out.Add(dl, dr, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// JordanWignerFermionOpenSystem maps system and noise parts separately
// and regroups them.
func JordanWignerFermionOpenSystem(
	sys *fermions.FermionLindbladOpenSystem,
) (*spins.PauliLindbladOpenSystem, error) {
	system, err := JordanWignerFermionHamiltonian(sys.System())
	if err != nil {
		return nil, err
	}
	noise, err := JordanWignerFermionNoiseOperator(sys.Noise())
	if err != nil {
		return nil, err
	}

	return spins.GroupPauliLindbladOpenSystem(system, noise)
}

// identityFermionOperator returns the multiplicative unit.
func identityFermionOperator() *fermions.FermionOperator {
	out := fermions.NewFermionOperator()
	identity, err := fermions.NewFermionProduct(nil, nil)
	mustNoErr(err)
	mustNoErr(out.Set(identity, coeff.One))

	return out
}

// jwSiteImage returns the fermionic image of one Pauli letter on site s,
// including the occupation string on sites below s for the flip axes:
//
//	X_s -> (prod_{i<s} (1-2n_i)) (c_s + a_s)
//	Y_s -> i (prod_{i<s} (1-2n_i)) (c_s - a_s)
//	Z_s -> 1 - 2 n_s
func jwSiteImage(site int, op spins.SinglePauliOperator) (*fermions.FermionOperator, error) {
	occupation := func(i int) fermions.FermionProduct {
		n, err := fermions.NewFermionProduct([]int{i}, []int{i})
		mustNoErr(err)

		return n
	}

	if op == spins.PauliZ {
		out := identityFermionOperator()
		mustNoErr(out.Add(occupation(site), coeff.FromFloat(-2)))

		return out, nil
	}

	out := identityFermionOperator()
	var err error
	for i := 0; i < site; i++ {
		z := identityFermionOperator()
		mustNoErr(z.Add(occupation(i), coeff.FromFloat(-2)))
		if out, err = operators.Mul(out, z); err != nil {
			return nil, err
		}
	}

	creator, err := fermions.NewFermionProduct([]int{site}, nil)
	if err != nil {
		return nil, err
	}
	annihilator, err := fermions.NewFermionProduct(nil, []int{site})
	if err != nil {
		return nil, err
	}
	ladder := fermions.NewFermionOperator()
	if op == spins.PauliX {
		mustNoErr(ladder.Set(creator, coeff.One))
		mustNoErr(ladder.Set(annihilator, coeff.One))
	} else {
		mustNoErr(ladder.Set(creator, coeff.I))
		mustNoErr(ladder.Set(annihilator, -coeff.I))
	}

	return operators.Mul(out, ladder)
}

// PauliProductToFermionOperator maps one Pauli product to its fermionic
// image by multiplying the per-site images in site order.
func PauliProductToFermionOperator(p spins.PauliProduct) (*fermions.FermionOperator, error) {
	out := identityFermionOperator()
	for _, site := range p.Sites() {
		image, err := jwSiteImage(site, p.Get(site))
		if err != nil {
			return nil, err
		}
		if out, err = operators.Mul(out, image); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// JordanWignerSpinOperator maps a spin operator term-by-term to its
// fermionic image.
func JordanWignerSpinOperator(op *spins.PauliOperator) (*fermions.FermionOperator, error) {
	out := fermions.NewFermionOperator()
	for _, t := range op.Terms() {
		image, err := PauliProductToFermionOperator(t.Key)
		if err != nil {
			return nil, err
		}
		if err := out.AddOperator(image.ScalarMul(t.Value)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// JordanWignerSpinHamiltonian maps a spin hamiltonian to a fermionic
// hamiltonian, folding conjugate term pairs of the image into canonical
// halves.
func JordanWignerSpinHamiltonian(h *spins.PauliHamiltonian) (*fermions.FermionHamiltonian, error) {
	image, err := JordanWignerSpinOperator(h.ToOperator())
	if err != nil {
		return nil, err
	}
	out := fermions.NewFermionHamiltonian()
	for _, t := range image.Terms() {
		conj, _ := t.Key.Conjugate()
		if t.Key.Compare(conj) > 0 {
			// Covered by the conjugate partner's canonical half.
			continue
		}
		half, err := fermions.NewHermitianFermionProduct(t.Key.Creators(), t.Key.Annihilators())
		if err != nil {
			return nil, err
		}
		if err := out.Set(half, t.Value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// JordanWignerSpinNoiseOperator maps a spin dissipator sum bilinearly
// into the fermionic algebra, rewriting decoherence keys through the
// Pauli basis first.
func JordanWignerSpinNoiseOperator(
	noise *spins.PauliLindbladNoiseOperator,
) (*fermions.FermionLindbladNoiseOperator, error) {
	out := fermions.NewFermionLindbladNoiseOperator()
	for _, t := range noise.Terms() {
		lp, fl := spins.DecoherenceProductToPauli(t.Pair.Left)
		rp, fr := spins.DecoherenceProductToPauli(t.Pair.Right)
		leftImage, err := PauliProductToFermionOperator(lp)
		if err != nil {
			return nil, err
		}
		rightImage, err := PauliProductToFermionOperator(rp)
		if err != nil {
			return nil, err
		}
		for _, lt := range leftImage.Terms() {
			for _, rt := range rightImage.Terms() {
				v := t.Value * fl * lt.Value * (fr * rt.Value).Conj()
				if err := out.Add(lt.Key, rt.Key, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// JordanWignerSpinOpenSystem maps system and noise parts separately and
// regroups them.
func JordanWignerSpinOpenSystem(
	sys *spins.PauliLindbladOpenSystem,
) (*fermions.FermionLindbladOpenSystem, error) {
	system, err := JordanWignerSpinHamiltonian(sys.System())
	if err != nil {
		return nil, err
	}
	noise, err := JordanWignerSpinNoiseOperator(sys.Noise())
	if err != nil {
		return nil, err
	}

	return fermions.GroupFermionLindbladOpenSystem(system, noise)
}
