package fermions_test

import (
	"testing"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/fermions"
	"github.com/katalvlaran/qualg/operators"
	"github.com/stretchr/testify/require"
)

func fermion(t *testing.T, creators, annihilators []int) fermions.FermionProduct {
	t.Helper()
	p, err := fermions.NewFermionProduct(creators, annihilators)
	require.NoError(t, err)

	return p
}

func termMap(terms []operators.Term[fermions.FermionProduct]) map[string]coeff.Coefficient {
	out := make(map[string]coeff.Coefficient, len(terms))
	for _, term := range terms {
		out[term.Key.String()] += term.Value
	}

	return out
}

func TestFermionProduct_ConstructorValidation(t *testing.T) {
	_, err := fermions.NewFermionProduct([]int{0, 0}, nil)
	require.ErrorIs(t, err, fermions.ErrRepeatedFermionMode)

	_, err = fermions.NewFermionProduct([]int{1, 0}, nil)
	require.ErrorIs(t, err, fermions.ErrUnsortedModes)

	_, err = fermions.NewFermionProduct(nil, []int{-1})
	require.ErrorIs(t, err, fermions.ErrNegativeMode)

	p := fermion(t, []int{0, 2}, []int{1})
	require.Equal(t, "c0c2a1", p.String())
	require.Equal(t, 3, p.MinCapacity())
}

func TestFermionProduct_ParseRoundTrip(t *testing.T) {
	for _, s := range []string{"I", "c0", "a2", "c0c1a0a1", "c1a2"} {
		p, err := fermions.ParseFermionProduct(s)
		require.NoError(t, err)
		require.Equal(t, s, p.String())
	}
}

func TestFermionProduct_ParseErrors(t *testing.T) {
	_, err := fermions.ParseFermionProduct("c0c0")
	require.ErrorIs(t, err, fermions.ErrRepeatedFermionMode)
	_, err = fermions.ParseFermionProduct("a1a0")
	require.ErrorIs(t, err, fermions.ErrUnsortedModes)
	_, err = fermions.ParseFermionProduct("x0")
	require.ErrorIs(t, err, fermions.ErrParse)
}

func TestFermionProduct_ConjugateSign(t *testing.T) {
	// (c0 c1)† = a1 a0 = -a0 a1 after reordering.
	p := fermion(t, []int{0, 1}, nil)
	conj, sign := p.Conjugate()
	require.Equal(t, "a0a1", conj.String())
	require.Equal(t, -coeff.One, sign)

	// Single letters flip with no sign.
	conj, sign = fermion(t, []int{3}, nil).Conjugate()
	require.Equal(t, "a3", conj.String())
	require.Equal(t, coeff.One, sign)

	// Equal lists are always natural: the two reversal signs cancel.
	require.True(t, fermion(t, []int{0, 1}, []int{0, 1}).IsNaturalHermitian())
	require.False(t, fermion(t, []int{0}, []int{1}).IsNaturalHermitian())
}

func TestFermionProduct_MulAnticommutation(t *testing.T) {
	// a1 · c1 = 1 - c1 a1.
	terms, err := fermion(t, nil, []int{1}).Mul(fermion(t, []int{1}, nil))
	require.NoError(t, err)
	m := termMap(terms)
	require.Len(t, m, 2)
	require.Equal(t, coeff.One, m["I"])
	require.Equal(t, -coeff.One, m["c1a1"])

	// c1 · a1 is already normal ordered.
	terms, err = fermion(t, []int{1}, nil).Mul(fermion(t, nil, []int{1}))
	require.NoError(t, err)
	m = termMap(terms)
	require.Len(t, m, 1)
	require.Equal(t, coeff.One, m["c1a1"])
}

func TestFermionProduct_MulExclusion(t *testing.T) {
	// c0 · c0 = 0.
	terms, err := fermion(t, []int{0}, nil).Mul(fermion(t, []int{0}, nil))
	require.NoError(t, err)
	require.Empty(t, terms)

	// a0 · a0 = 0.
	terms, err = fermion(t, nil, []int{0}).Mul(fermion(t, nil, []int{0}))
	require.NoError(t, err)
	require.Empty(t, terms)
}

func TestFermionProduct_MulCrossModeSign(t *testing.T) {
	// a0 · c1 = -c1 a0: distinct modes anticommute.
	terms, err := fermion(t, nil, []int{0}).Mul(fermion(t, []int{1}, nil))
	require.NoError(t, err)
	m := termMap(terms)
	require.Len(t, m, 1)
	require.Equal(t, -coeff.One, m["c1a0"])

	// c0 · c1 is already ordered; c1 · c0 picks up the swap sign.
	terms, err = fermion(t, []int{1}, nil).Mul(fermion(t, []int{0}, nil))
	require.NoError(t, err)
	m = termMap(terms)
	require.Equal(t, -coeff.One, m["c0c1"])
}

func TestFermionProduct_MulNumberOperatorIdempotent(t *testing.T) {
	// n = c1a1 satisfies n·n = n.
	n := fermion(t, []int{1}, []int{1})
	terms, err := n.Mul(n)
	require.NoError(t, err)
	m := termMap(terms)
	require.Len(t, m, 1)
	require.Equal(t, coeff.One, m["c1a1"])
}

func TestFermionProduct_MulAssociativity(t *testing.T) {
	a := fermion(t, nil, []int{0})
	c := fermion(t, []int{0}, nil)
	n := fermion(t, []int{0}, []int{0})

	// (a·c)·n and a·(c·n) must agree as operators.
	toOperator := func(terms []operators.Term[fermions.FermionProduct]) *fermions.FermionOperator {
		out := fermions.NewFermionOperator()
		for _, term := range terms {
			require.NoError(t, out.Add(term.Key, term.Value))
		}

		return out
	}

	ac, err := a.Mul(c)
	require.NoError(t, err)
	left := fermions.NewFermionOperator()
	for _, term := range ac {
		img, mulErr := term.Key.Mul(n)
		require.NoError(t, mulErr)
		require.NoError(t, left.AddOperator(toOperator(img).ScalarMul(term.Value)))
	}

	cn, err := c.Mul(n)
	require.NoError(t, err)
	right := fermions.NewFermionOperator()
	for _, term := range cn {
		img, mulErr := a.Mul(term.Key)
		require.NoError(t, mulErr)
		require.NoError(t, right.AddOperator(toOperator(img).ScalarMul(term.Value)))
	}

	require.True(t, left.Equal(right))
}

func TestHermitianFermionProduct_OrientationRules(t *testing.T) {
	h, err := fermions.NewHermitianFermionProduct(nil, []int{0})
	require.NoError(t, err)
	require.Equal(t, "a0", h.String())

	// The swapped orientation is rejected, not silently normalized.
	_, err = fermions.NewHermitianFermionProduct([]int{0}, nil)
	require.ErrorIs(t, err, fermions.ErrNonCanonicalKey)

	_, err = fermions.ParseHermitianFermionProduct("c0a0a1")
	require.NoError(t, err)
	_, err = fermions.ParseHermitianFermionProduct("c0c1a0")
	require.ErrorIs(t, err, fermions.ErrNonCanonicalKey)
}

func TestHermitianFermionProduct_ExpandCarriesSign(t *testing.T) {
	// (c0 a0a1)† = c0c1 a0 with sign -1 from reordering two annihilators.
	h, err := fermions.NewHermitianFermionProduct([]int{0}, []int{0, 1})
	require.NoError(t, err)

	expansion := h.HermitianExpand()
	require.Len(t, expansion, 2)
	require.Equal(t, "c0a0a1", expansion[0].Key.String())
	require.Equal(t, coeff.One, expansion[0].Factor)
	require.Equal(t, "c0c1a0", expansion[1].Key.String())
	require.Equal(t, -coeff.One, expansion[1].Factor)
	require.True(t, expansion[1].Conjugated)
}

func TestFermionHamiltonian_ToOperator(t *testing.T) {
	h := fermions.NewFermionHamiltonian()
	hop, err := fermions.NewHermitianFermionProduct(nil, []int{1})
	require.NoError(t, err)
	require.NoError(t, h.Set(hop, coeff.FromParts(0.5, 0.25)))

	op := h.ToOperator()
	require.Equal(t, 2, op.Len())
	require.Equal(t, coeff.FromParts(0.5, 0.25), op.Get(fermion(t, nil, []int{1})))
	require.Equal(t, coeff.FromParts(0.5, -0.25), op.Get(fermion(t, []int{1}, nil)))
}
