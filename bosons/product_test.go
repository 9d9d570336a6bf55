package bosons_test

import (
	"testing"

	"github.com/katalvlaran/qualg/bosons"
	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
	"github.com/stretchr/testify/require"
)

func boson(t *testing.T, creators, annihilators []int) bosons.BosonProduct {
	t.Helper()
	p, err := bosons.NewBosonProduct(creators, annihilators)
	require.NoError(t, err)

	return p
}

func termMap(terms []operators.Term[bosons.BosonProduct]) map[string]coeff.Coefficient {
	out := make(map[string]coeff.Coefficient, len(terms))
	for _, t := range terms {
		out[t.Key.String()] += t.Value
	}

	return out
}

func TestBosonProduct_CanonicalString(t *testing.T) {
	p := boson(t, []int{1, 0, 0}, []int{2})
	// Constructor sorts each list; repeats are allowed.
	require.Equal(t, "c0c0c1a2", p.String())
	require.Equal(t, "I", boson(t, nil, nil).String())
	require.Equal(t, 3, p.NumberCreators())
	require.Equal(t, 1, p.NumberAnnihilators())
	require.Equal(t, 3, p.MinCapacity())
}

func TestBosonProduct_ConstructorRejectsNegativeModes(t *testing.T) {
	_, err := bosons.NewBosonProduct([]int{-1}, nil)
	require.ErrorIs(t, err, bosons.ErrNegativeMode)
	_, err = bosons.NewBosonProduct(nil, []int{0, -3})
	require.ErrorIs(t, err, bosons.ErrNegativeMode)
}

func TestBosonProduct_ParseRoundTrip(t *testing.T) {
	for _, s := range []string{"I", "c0", "a1", "c0c0a1a2", "c3a3"} {
		p, err := bosons.ParseBosonProduct(s)
		require.NoError(t, err)
		require.Equal(t, s, p.String())
	}
}

func TestBosonProduct_ParseErrors(t *testing.T) {
	for _, s := range []string{"", "c", "b0", "a0c1", "c1c0", "a2a1"} {
		_, err := bosons.ParseBosonProduct(s)
		require.ErrorIs(t, err, bosons.ErrParse, "input %q", s)
	}
}

func TestBosonProduct_CreateAnnihilateBuilders(t *testing.T) {
	p := bosons.BosonProduct{}.Create(1).Create(0).Annihilate(1)
	require.Equal(t, "c0c1a1", p.String())
	require.Panics(t, func() { p.Create(-1) })
}

func TestBosonProduct_Conjugate(t *testing.T) {
	p := boson(t, []int{0}, []int{1, 2})
	conj, phase := p.Conjugate()
	require.Equal(t, "c1c2a0", conj.String())
	require.Equal(t, coeff.One, phase)

	require.True(t, boson(t, []int{0, 1}, []int{0, 1}).IsNaturalHermitian())
	require.False(t, p.IsNaturalHermitian())
}

func TestBosonProduct_MulCommutingModes(t *testing.T) {
	// Disjoint modes: plain concatenation, a single term.
	terms, err := boson(t, []int{0}, nil).Mul(boson(t, []int{1}, nil))
	require.NoError(t, err)
	require.Len(t, terms, 1)
	require.Equal(t, "c0c1", terms[0].Key.String())
	require.Equal(t, coeff.One, terms[0].Value)
}

func TestBosonProduct_MulWickContraction(t *testing.T) {
	// a0 · c0 = c0 a0 + 1.
	terms, err := boson(t, nil, []int{0}).Mul(boson(t, []int{0}, nil))
	require.NoError(t, err)
	m := termMap(terms)
	require.Len(t, m, 2)
	require.Equal(t, coeff.One, m["c0a0"])
	require.Equal(t, coeff.One, m["I"])
}

func TestBosonProduct_MulWickFactors(t *testing.T) {
	// a0 a0 · c0 c0 = c0c0 a0a0 + 4 c0a0 + 2.
	terms, err := boson(t, nil, []int{0, 0}).Mul(boson(t, []int{0, 0}, nil))
	require.NoError(t, err)
	m := termMap(terms)
	require.Len(t, m, 3)
	require.Equal(t, coeff.One, m["c0c0a0a0"])
	require.Equal(t, coeff.FromFloat(4), m["c0a0"])
	require.Equal(t, coeff.FromFloat(2), m["I"])
}

func TestBosonProduct_MulNumberOperatorSquare(t *testing.T) {
	// n·n = c0a0 · c0a0 = c0c0a0a0 + c0a0.
	n := boson(t, []int{0}, []int{0})
	terms, err := n.Mul(n)
	require.NoError(t, err)
	m := termMap(terms)
	require.Len(t, m, 2)
	require.Equal(t, coeff.One, m["c0c0a0a0"])
	require.Equal(t, coeff.One, m["c0a0"])
}

func TestBosonProduct_MulAssociativity(t *testing.T) {
	a := boson(t, nil, []int{0})
	c := boson(t, []int{0}, nil)

	toOperator := func(terms []operators.Term[bosons.BosonProduct]) *bosons.BosonOperator {
		out := bosons.NewBosonOperator()
		for _, term := range terms {
			require.NoError(t, out.Add(term.Key, term.Value))
		}

		return out
	}

	// (a·c)·c and a·(c·c) must agree as operators; the Wick factors pin
	// the result to c0c0a0 + 2 c0.
	ac, err := a.Mul(c)
	require.NoError(t, err)
	left := bosons.NewBosonOperator()
	for _, term := range ac {
		img, mulErr := term.Key.Mul(c)
		require.NoError(t, mulErr)
		require.NoError(t, left.AddOperator(toOperator(img).ScalarMul(term.Value)))
	}

	cc, err := c.Mul(c)
	require.NoError(t, err)
	right := bosons.NewBosonOperator()
	for _, term := range cc {
		img, mulErr := a.Mul(term.Key)
		require.NoError(t, mulErr)
		require.NoError(t, right.AddOperator(toOperator(img).ScalarMul(term.Value)))
	}

	require.True(t, left.Equal(right))
	require.Equal(t, 2, left.Len())
	require.Equal(t, coeff.One, left.Get(boson(t, []int{0, 0}, []int{0})))
	require.Equal(t, coeff.FromFloat(2), left.Get(boson(t, []int{0}, nil)))
}

func TestBosonProduct_CompareOrder(t *testing.T) {
	identity := boson(t, nil, nil)
	c0 := boson(t, []int{0}, nil)
	a0 := boson(t, nil, []int{0})
	n0 := boson(t, []int{0}, []int{0})

	require.Negative(t, identity.Compare(c0))
	// Shorter creator list first at equal total length.
	require.Negative(t, a0.Compare(c0))
	require.Negative(t, c0.Compare(n0))
	require.Zero(t, n0.Compare(boson(t, []int{0}, []int{0})))
}

func TestHermitianBosonProduct_CanonicalOrientation(t *testing.T) {
	// c0 a0a1 is canonical: creators sort before annihilators.
	h, err := bosons.NewHermitianBosonProduct([]int{0}, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, "c0a0a1", h.String())
	require.False(t, h.IsNaturalHermitian())

	// The swapped orientation normalizes to the same key.
	swapped, err := bosons.NewHermitianBosonProduct([]int{0, 1}, []int{0})
	require.NoError(t, err)
	require.Zero(t, h.Compare(swapped))
}

func TestHermitianBosonProduct_ParseRejectsNonCanonical(t *testing.T) {
	_, err := bosons.ParseHermitianBosonProduct("c0c1a0")
	require.ErrorIs(t, err, bosons.ErrNonCanonicalKey)

	h, err := bosons.ParseHermitianBosonProduct("c0a0a1")
	require.NoError(t, err)
	require.Equal(t, "c0a0a1", h.String())
}

func TestHermitianBosonProduct_Expand(t *testing.T) {
	h, err := bosons.NewHermitianBosonProduct(nil, []int{2})
	require.NoError(t, err)

	expansion := h.HermitianExpand()
	require.Len(t, expansion, 2)
	require.Equal(t, "a2", expansion[0].Key.String())
	require.False(t, expansion[0].Conjugated)
	require.Equal(t, "c2", expansion[1].Key.String())
	require.True(t, expansion[1].Conjugated)

	natural, err := bosons.NewHermitianBosonProduct([]int{1}, []int{1})
	require.NoError(t, err)
	require.Len(t, natural.HermitianExpand(), 1)
}

func TestBosonHamiltonian_ToOperatorExpandsConjugates(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	displacement, err := bosons.NewHermitianBosonProduct(nil, []int{0})
	require.NoError(t, err)
	require.NoError(t, h.Set(displacement, coeff.FromParts(1, 2)))

	op := h.ToOperator()
	require.Equal(t, 2, op.Len())
	require.Equal(t, coeff.FromParts(1, 2), op.Get(boson(t, nil, []int{0})))
	require.Equal(t, coeff.FromParts(1, -2), op.Get(boson(t, []int{0}, nil)))
}

func TestBosonHamiltonian_RealCoefficientOnNaturalKeys(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	occupation, err := bosons.NewHermitianBosonProduct([]int{0}, []int{0})
	require.NoError(t, err)

	require.ErrorIs(t, h.Set(occupation, coeff.FromParts(1, 1)), operators.ErrComplexCoefficient)
	require.NoError(t, h.Set(occupation, coeff.FromFloat(3)))
}

func TestBosonOperator_MulViaContainers(t *testing.T) {
	a := bosons.NewBosonOperator()
	require.NoError(t, a.Set(boson(t, nil, []int{0}), coeff.One))
	c := bosons.NewBosonOperator()
	require.NoError(t, c.Set(boson(t, []int{0}, nil), coeff.One))

	// [a, c] = 1: a·c - c·a keeps only the identity.
	ac, err := operators.Mul(a, c)
	require.NoError(t, err)
	ca, err := operators.Mul(c, a)
	require.NoError(t, err)
	require.NoError(t, ac.AddOperator(ca.ScalarMul(coeff.FromFloat(-1))))
	require.Equal(t, 1, ac.Len())
	require.Equal(t, coeff.One, ac.Get(boson(t, nil, nil)))
}
