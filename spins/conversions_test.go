package spins_test

import (
	"testing"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/spins"
	"github.com/stretchr/testify/require"
)

func TestDecoherenceProductToPauli(t *testing.T) {
	d, err := spins.ParseDecoherenceProduct("0X1iY")
	require.NoError(t, err)

	p, factor := spins.DecoherenceProductToPauli(d)
	require.Equal(t, "0X1Y", p.String())
	// iY = i·Y contributes one factor i.
	require.Equal(t, coeff.I, factor)
}

func TestPauliProductToDecoherence(t *testing.T) {
	p := mustParsePauli(t, "0Y1Y2Z")
	d, factor := spins.PauliProductToDecoherence(p)
	require.Equal(t, "0iY1iY2Z", d.String())
	// Two Y entries contribute (-i)^2 = -1.
	require.Equal(t, -coeff.One, factor)
}

func TestPauliDecoherenceConversionInverse(t *testing.T) {
	p := mustParsePauli(t, "0Y2X")
	d, toD := spins.PauliProductToDecoherence(p)
	back, toP := spins.DecoherenceProductToPauli(d)
	require.Zero(t, p.Compare(back))
	require.Equal(t, coeff.One, toD*toP)
}

func TestPlusMinusProductToPauliTerms(t *testing.T) {
	// σ⁺ = (X + iY)/2.
	plus := spins.NewPlusMinusProduct().Plus(0)
	terms := spins.PlusMinusProductToPauliTerms(plus)
	require.Len(t, terms, 2)

	byKey := map[string]coeff.Coefficient{}
	for _, term := range terms {
		byKey[term.Key.String()] = term.Value
	}
	require.Equal(t, coeff.FromFloat(0.5), byKey["0X"])
	require.Equal(t, coeff.FromParts(0, 0.5), byKey["0Y"])
}

func TestPauliLadderOperatorConversionsRoundTrip(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(mustParsePauli(t, "0X1Z"), coeff.FromFloat(0.5)))
	require.NoError(t, op.Set(mustParsePauli(t, "2Y"), coeff.FromParts(0, 1)))

	ladder := spins.PauliOperatorToPlusMinus(op)
	back := spins.PlusMinusOperatorToPauli(ladder)
	require.True(t, back.Equal(op))
}

func TestPlusMinusProductToDecoherenceTerms(t *testing.T) {
	// σ⁺ = (X + iY)/2: real weights only, iY is a basis letter here.
	plus := spins.NewPlusMinusProduct().Plus(0)
	terms := spins.PlusMinusProductToDecoherenceTerms(plus)
	require.Len(t, terms, 2)

	byKey := map[string]coeff.Coefficient{}
	for _, term := range terms {
		byKey[term.Key.String()] = term.Value
	}
	require.Equal(t, coeff.FromFloat(0.5), byKey["0X"])
	require.Equal(t, coeff.FromFloat(0.5), byKey["0iY"])

	// σ⁻ flips the iY weight; Z passes through.
	minus := spins.NewPlusMinusProduct().Minus(1).Z(2)
	byKey = map[string]coeff.Coefficient{}
	for _, term := range spins.PlusMinusProductToDecoherenceTerms(minus) {
		byKey[term.Key.String()] = term.Value
	}
	require.Len(t, byKey, 2)
	require.Equal(t, coeff.FromFloat(0.5), byKey["1X2Z"])
	require.Equal(t, coeff.FromFloat(-0.5), byKey["1iY2Z"])
}

func TestDecoherenceProductToPlusMinusTerms(t *testing.T) {
	// iY = σ⁺ - σ⁻.
	iy := spins.NewDecoherenceProduct().IY(0)
	byKey := map[string]coeff.Coefficient{}
	for _, term := range spins.DecoherenceProductToPlusMinusTerms(iy) {
		byKey[term.Key.String()] = term.Value
	}
	require.Len(t, byKey, 2)
	require.Equal(t, coeff.One, byKey["0+"])
	require.Equal(t, -coeff.One, byKey["0-"])

	// X = σ⁺ + σ⁻.
	x := spins.NewDecoherenceProduct().X(0)
	byKey = map[string]coeff.Coefficient{}
	for _, term := range spins.DecoherenceProductToPlusMinusTerms(x) {
		byKey[term.Key.String()] = term.Value
	}
	require.Equal(t, coeff.One, byKey["0+"])
	require.Equal(t, coeff.One, byKey["0-"])
}

func TestLadderDecoherenceOperatorConversionsRoundTrip(t *testing.T) {
	op := spins.NewPlusMinusOperator()
	require.NoError(t, op.Set(spins.NewPlusMinusProduct().Plus(0).Z(1), coeff.FromParts(1, -2)))
	require.NoError(t, op.Set(spins.NewPlusMinusProduct().Minus(2), coeff.FromFloat(0.5)))

	dec := spins.PlusMinusOperatorToDecoherence(op)
	back := spins.DecoherenceOperatorToPlusMinus(dec)
	require.True(t, back.Equal(op))
}

func TestDecoherenceOperatorToPauli(t *testing.T) {
	op := spins.NewDecoherenceOperator()
	d, err := spins.ParseDecoherenceProduct("0iY")
	require.NoError(t, err)
	require.NoError(t, op.Set(d, coeff.FromFloat(2)))

	p := spins.DecoherenceOperatorToPauli(op)
	// 2·(iY) = 2i·Y.
	require.Equal(t, coeff.FromParts(0, 2), p.Get(mustParsePauli(t, "0Y")))
}
