package mappings_test

import (
	"testing"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/fermions"
	"github.com/katalvlaran/qualg/mappings"
	"github.com/katalvlaran/qualg/operators"
	"github.com/katalvlaran/qualg/spins"
	"github.com/stretchr/testify/require"
)

func mustPauli(t *testing.T, s string) spins.PauliProduct {
	t.Helper()
	p, err := spins.ParsePauliProduct(s)
	require.NoError(t, err)

	return p
}

func mustFermion(t *testing.T, creators, annihilators []int) fermions.FermionProduct {
	t.Helper()
	p, err := fermions.NewFermionProduct(creators, annihilators)
	require.NoError(t, err)

	return p
}

func TestFermionProductToPauliOperator_SingleLetters(t *testing.T) {
	// c0 -> (X0 - iY0)/2, no Z-string below mode 0.
	image, err := mappings.FermionProductToPauliOperator(mustFermion(t, []int{0}, nil))
	require.NoError(t, err)
	require.Equal(t, 2, image.Len())
	require.Equal(t, coeff.FromFloat(0.5), image.Get(mustPauli(t, "0X")))
	require.Equal(t, coeff.FromParts(0, -0.5), image.Get(mustPauli(t, "0Y")))

	// a2 carries the Z-string over modes 0 and 1.
	image, err = mappings.FermionProductToPauliOperator(mustFermion(t, nil, []int{2}))
	require.NoError(t, err)
	require.Equal(t, coeff.FromFloat(0.5), image.Get(mustPauli(t, "0Z1Z2X")))
	require.Equal(t, coeff.FromParts(0, 0.5), image.Get(mustPauli(t, "0Z1Z2Y")))
}

func TestFermionProductToPauliOperator_HoppingWord(t *testing.T) {
	// c1 a2: the shared Z-strings cancel on sites below 1.
	image, err := mappings.FermionProductToPauliOperator(mustFermion(t, []int{1}, []int{2}))
	require.NoError(t, err)
	require.Equal(t, 4, image.Len())
	require.Equal(t, coeff.FromFloat(0.25), image.Get(mustPauli(t, "1X2X")))
	require.Equal(t, coeff.FromFloat(0.25), image.Get(mustPauli(t, "1Y2Y")))
	require.Equal(t, coeff.FromParts(0, 0.25), image.Get(mustPauli(t, "1X2Y")))
	require.Equal(t, coeff.FromParts(0, -0.25), image.Get(mustPauli(t, "1Y2X")))
}

func TestFermionProductToPauliOperator_Occupation(t *testing.T) {
	// n0 = c0 a0 -> (I - Z0)/2.
	image, err := mappings.FermionProductToPauliOperator(mustFermion(t, []int{0}, []int{0}))
	require.NoError(t, err)
	require.Equal(t, coeff.FromFloat(0.5), image.Get(mustPauli(t, "I")))
	require.Equal(t, coeff.FromFloat(-0.5), image.Get(mustPauli(t, "0Z")))
}

func TestJordanWignerFermionOperator_PreservesAnticommutator(t *testing.T) {
	// {a0, c0} = 1 must also hold for the spin images.
	a := fermions.NewFermionOperator()
	require.NoError(t, a.Set(mustFermion(t, nil, []int{0}), coeff.One))
	c := fermions.NewFermionOperator()
	require.NoError(t, c.Set(mustFermion(t, []int{0}, nil), coeff.One))

	aImg, err := mappings.JordanWignerFermionOperator(a)
	require.NoError(t, err)
	cImg, err := mappings.JordanWignerFermionOperator(c)
	require.NoError(t, err)

	ac, err := operators.Mul(aImg, cImg)
	require.NoError(t, err)
	ca, err := operators.Mul(cImg, aImg)
	require.NoError(t, err)
	require.NoError(t, ac.AddOperator(ca))
	require.Equal(t, 1, ac.Len())
	require.Equal(t, coeff.One, ac.Get(mustPauli(t, "I")))
}

func TestJordanWignerFermionHamiltonian_Hopping(t *testing.T) {
	h := fermions.NewFermionHamiltonian()
	hop, err := fermions.NewHermitianFermionProduct([]int{0}, []int{1})
	require.NoError(t, err)
	require.NoError(t, h.Set(hop, coeff.One))

	image, err := mappings.JordanWignerFermionHamiltonian(h)
	require.NoError(t, err)
	// c0 a1 + c1 a0 -> (X0X1 + Y0Y1)/2.
	require.Equal(t, 2, image.Len())
	require.Equal(t, coeff.FromFloat(0.5), image.Get(mustPauli(t, "0X1X")))
	require.Equal(t, coeff.FromFloat(0.5), image.Get(mustPauli(t, "0Y1Y")))
}

func TestJordanWignerFermionNoiseOperator_Bilinear(t *testing.T) {
	noise := fermions.NewFermionLindbladNoiseOperator()
	a0 := mustFermion(t, nil, []int{0})
	require.NoError(t, noise.Set(a0, a0, coeff.One))

	image, err := mappings.JordanWignerFermionNoiseOperator(noise)
	require.NoError(t, err)
	// a0 -> (X0 + iY0)/2 expands into four decoherence pairs of weight 1/4.
	require.Equal(t, 4, image.Len())
	x := spins.NewDecoherenceProduct().X(0)
	iy := spins.NewDecoherenceProduct().IY(0)
	quarter := coeff.FromFloat(0.25)
	require.Equal(t, quarter, image.Get(x, x))
	require.Equal(t, quarter, image.Get(x, iy))
	require.Equal(t, quarter, image.Get(iy, x))
	require.Equal(t, quarter, image.Get(iy, iy))
}

func TestJordanWignerFermionOpenSystem(t *testing.T) {
	sys := fermions.NewFermionLindbladOpenSystem()
	occupation, err := fermions.NewHermitianFermionProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.NoError(t, sys.SystemAdd(occupation, coeff.FromFloat(2)))
	a0 := mustFermion(t, nil, []int{0})
	require.NoError(t, sys.NoiseAdd(a0, a0, coeff.FromFloat(0.5)))

	image, err := mappings.JordanWignerFermionOpenSystem(sys)
	require.NoError(t, err)
	require.Equal(t, coeff.FromFloat(-1), image.System().Get(mustPauli(t, "0Z")))
	require.Equal(t, 4, image.Noise().Len())
}

func TestPauliProductToFermionOperator_Letters(t *testing.T) {
	// Z0 -> 1 - 2 n0.
	image, err := mappings.PauliProductToFermionOperator(mustPauli(t, "0Z"))
	require.NoError(t, err)
	require.Equal(t, coeff.One, image.Get(mustFermion(t, nil, nil)))
	require.Equal(t, coeff.FromFloat(-2), image.Get(mustFermion(t, []int{0}, []int{0})))

	// X0 -> c0 + a0.
	image, err = mappings.PauliProductToFermionOperator(mustPauli(t, "0X"))
	require.NoError(t, err)
	require.Equal(t, 2, image.Len())
	require.Equal(t, coeff.One, image.Get(mustFermion(t, []int{0}, nil)))
	require.Equal(t, coeff.One, image.Get(mustFermion(t, nil, []int{0})))
}

func TestJordanWigner_RoundTripFermionOperator(t *testing.T) {
	op := fermions.NewFermionOperator()
	require.NoError(t, op.Set(mustFermion(t, []int{0}, []int{1}), coeff.FromParts(0.5, 0.25)))
	require.NoError(t, op.Set(mustFermion(t, []int{1}, []int{1}), coeff.FromFloat(2)))

	image, err := mappings.JordanWignerFermionOperator(op)
	require.NoError(t, err)
	back, err := mappings.JordanWignerSpinOperator(image)
	require.NoError(t, err)
	require.True(t, back.Equal(op))
}

func TestJordanWigner_RoundTripSpinHamiltonian(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	require.NoError(t, h.Set(mustPauli(t, "0X1X"), coeff.FromFloat(0.5)))
	require.NoError(t, h.Set(mustPauli(t, "1Z"), coeff.FromFloat(-1)))

	image, err := mappings.JordanWignerSpinHamiltonian(h)
	require.NoError(t, err)
	back, err := mappings.JordanWignerFermionHamiltonian(image)
	require.NoError(t, err)
	require.True(t, back.Equal(h))
}

func TestJordanWignerSpinOpenSystem_RoundTrip(t *testing.T) {
	sys := spins.NewPauliLindbladOpenSystem()
	require.NoError(t, sys.SystemAdd(mustPauli(t, "0Z"), coeff.One))
	x := spins.NewDecoherenceProduct().X(0)
	require.NoError(t, sys.NoiseAdd(x, x, coeff.FromFloat(0.25)))

	fermionic, err := mappings.JordanWignerSpinOpenSystem(sys)
	require.NoError(t, err)
	back, err := mappings.JordanWignerFermionOpenSystem(fermionic)
	require.NoError(t, err)
	require.True(t, back.Equal(sys))
}
