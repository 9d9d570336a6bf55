package mappings_test

import (
	"testing"

	"github.com/katalvlaran/qualg/bosons"
	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/mappings"
	"github.com/katalvlaran/qualg/spins"
	"github.com/stretchr/testify/require"
)

func hermitianBoson(t *testing.T, creators, annihilators []int) bosons.HermitianBosonProduct {
	t.Helper()
	h, err := bosons.NewHermitianBosonProduct(creators, annihilators)
	require.NoError(t, err)

	return h
}

func TestBosonHamiltonianToSpin_Occupation(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	require.NoError(t, h.Set(hermitianBoson(t, []int{0}, []int{0}), coeff.FromFloat(5)))

	// With one replica spin, 5 n0 -> 5 (I+Z0)/2.
	image, err := mappings.BosonHamiltonianToSpin(h, mappings.DefaultDickeOptions())
	require.NoError(t, err)
	require.Equal(t, 2, image.Len())
	require.Equal(t, coeff.FromFloat(2.5), image.Get(spins.NewPauliProduct()))
	require.Equal(t, coeff.FromFloat(2.5), image.Get(mustPauli(t, "0Z")))
}

func TestBosonHamiltonianToSpin_OccupationReplicas(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	require.NoError(t, h.Set(hermitianBoson(t, []int{1}, []int{1}), coeff.One))

	// Four replicas: mode 1 occupies sites 4..7.
	image, err := mappings.BosonHamiltonianToSpin(h, mappings.DickeOptions{SpinsPerMode: 4})
	require.NoError(t, err)
	require.Equal(t, 5, image.Len())
	require.Equal(t, coeff.FromFloat(2), image.Get(spins.NewPauliProduct()))
	for site := 4; site < 8; site++ {
		z := spins.NewPauliProduct().Z(site)
		require.Equal(t, coeff.FromFloat(0.5), image.Get(z))
	}
}

func TestBosonHamiltonianToSpin_Displacement(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	// The canonical half a0 denotes b0 + b0†.
	require.NoError(t, h.Set(hermitianBoson(t, nil, []int{0}), coeff.FromFloat(3)))

	image, err := mappings.BosonHamiltonianToSpin(h, mappings.DickeOptions{SpinsPerMode: 4})
	require.NoError(t, err)
	require.Equal(t, 4, image.Len())
	// The 1/√N scale keeps the collective coupling bounded.
	for site := 0; site < 4; site++ {
		x := spins.NewPauliProduct().X(site)
		require.Equal(t, coeff.FromFloat(1.5), image.Get(x))
	}
}

func TestBosonHamiltonianToSpin_IdentityAndErrors(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	require.NoError(t, h.Set(hermitianBoson(t, nil, nil), coeff.FromFloat(7)))

	image, err := mappings.BosonHamiltonianToSpin(h, mappings.DefaultDickeOptions())
	require.NoError(t, err)
	require.Equal(t, coeff.FromFloat(7), image.Get(spins.NewPauliProduct()))

	_, err = mappings.BosonHamiltonianToSpin(h, mappings.DickeOptions{SpinsPerMode: 0})
	require.ErrorIs(t, err, mappings.ErrBadSpinsPerMode)

	quad := bosons.NewBosonHamiltonian()
	require.NoError(t, quad.Set(hermitianBoson(t, []int{0}, []int{0, 1}), coeff.One))
	_, err = mappings.BosonHamiltonianToSpin(quad, mappings.DefaultDickeOptions())
	require.ErrorIs(t, err, mappings.ErrUnsupportedTermShape)
}

func TestBosonHamiltonianToSpin_ComplexDisplacementWeight(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	// v·b + v̄·b† with complex v is not a quadrature; the mapping must
	// refuse it as a shape problem, not a coefficient problem.
	require.NoError(t, h.Set(hermitianBoson(t, nil, []int{0}), coeff.FromParts(1, 1)))

	_, err := mappings.BosonHamiltonianToSpin(h, mappings.DefaultDickeOptions())
	require.ErrorIs(t, err, mappings.ErrUnsupportedTermShape)
}

func TestBosonOperatorToSpin(t *testing.T) {
	op := bosons.NewBosonOperator()
	occupation, err := bosons.NewBosonProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.NoError(t, op.Set(occupation, coeff.FromParts(0, 2)))

	image, err := mappings.BosonOperatorToSpin(op, mappings.DefaultDickeOptions())
	require.NoError(t, err)
	require.Equal(t, coeff.FromParts(0, 1), image.Get(spins.NewPauliProduct()))
	require.Equal(t, coeff.FromParts(0, 1), image.Get(mustPauli(t, "0Z")))

	// A lone ladder letter is not hermitian and has no replica image.
	ladder := bosons.NewBosonOperator()
	c0, err := bosons.NewBosonProduct([]int{0}, nil)
	require.NoError(t, err)
	require.NoError(t, ladder.Set(c0, coeff.One))
	_, err = mappings.BosonOperatorToSpin(ladder, mappings.DefaultDickeOptions())
	require.ErrorIs(t, err, mappings.ErrUnsupportedTermShape)
}
