package spins_test

import (
	"testing"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/spins"
	"github.com/stretchr/testify/require"
)

// entry flattens one COO triple for comparison.
type entry struct {
	row, col int64
	val      complex128
}

func entries(m spins.SparseMatrix) []entry {
	out := make([]entry, len(m.Values))
	for i := range m.Values {
		out[i] = entry{row: m.Rows[i], col: m.Cols[i], val: m.Values[i]}
	}

	return out
}

func TestPauliOperatorSparseMatrix_SingleSite(t *testing.T) {
	z := spins.NewPauliOperator()
	require.NoError(t, z.Set(mustParsePauli(t, "0Z"), coeff.One))

	m, err := spins.PauliOperatorSparseMatrix(z, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), m.Dim)
	// Bit 0 of the basis index selects the +1 eigenstate of Z.
	require.Equal(t, []entry{{0, 0, 1}, {1, 1, -1}}, entries(m))

	x := spins.NewPauliOperator()
	require.NoError(t, x.Set(mustParsePauli(t, "0X"), coeff.One))
	m, err = spins.PauliOperatorSparseMatrix(x, 1)
	require.NoError(t, err)
	require.Equal(t, []entry{{0, 1, 1}, {1, 0, 1}}, entries(m))

	y := spins.NewPauliOperator()
	require.NoError(t, y.Set(mustParsePauli(t, "0Y"), coeff.One))
	m, err = spins.PauliOperatorSparseMatrix(y, 1)
	require.NoError(t, err)
	// Row-major COO ordering: the |1⟩⟨0| entry follows the |0⟩⟨1| one.
	require.Equal(t, []entry{{0, 1, -1i}, {1, 0, 1i}}, entries(m))
}

func TestPauliOperatorSparseMatrix_IdentityAndEmpty(t *testing.T) {
	op := spins.NewPauliOperator()
	m, err := spins.PauliOperatorSparseMatrix(op, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), m.Dim)
	require.Empty(t, m.Values)

	require.NoError(t, op.Set(spins.NewPauliProduct(), coeff.FromFloat(2.5)))
	m, err = spins.PauliOperatorSparseMatrix(op, 1)
	require.NoError(t, err)
	require.Equal(t, []entry{{0, 0, 2.5}, {1, 1, 2.5}}, entries(m))
}

func TestPauliOperatorSparseMatrix_TwoSiteProduct(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(mustParsePauli(t, "0X1X"), coeff.One))

	m, err := spins.PauliOperatorSparseMatrix(op, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), m.Dim)
	// X0X1 is the anti-diagonal permutation.
	require.Equal(t, []entry{{0, 3, 1}, {1, 2, 1}, {2, 1, 1}, {3, 0, 1}}, entries(m))
}

func TestPauliOperatorSparseMatrix_CancellationDropsEntries(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(mustParsePauli(t, "0Z"), coeff.One))
	require.NoError(t, op.Set(spins.NewPauliProduct(), coeff.One))

	// I + Z has a zero at the |1⟩ diagonal slot; exact zeros are dropped.
	m, err := spins.PauliOperatorSparseMatrix(op, 1)
	require.NoError(t, err)
	require.Equal(t, []entry{{0, 0, 2}}, entries(m))
}

func TestPauliOperatorSparseMatrix_DimensionErrors(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(mustParsePauli(t, "2X"), coeff.One))

	_, err := spins.PauliOperatorSparseMatrix(op, 1)
	require.ErrorIs(t, err, spins.ErrMatrixDimension)

	_, err = spins.PauliOperatorSparseMatrix(op, -1)
	require.ErrorIs(t, err, spins.ErrMatrixDimension)

	_, err = spins.PauliOperatorSparseMatrix(op, 40)
	require.ErrorIs(t, err, spins.ErrMatrixDimension)
}

func TestPauliHamiltonianSparseMatrix(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	require.NoError(t, h.Set(mustParsePauli(t, "0Z"), coeff.FromFloat(0.5)))

	m, err := spins.PauliHamiltonianSparseMatrix(h, 1)
	require.NoError(t, err)
	require.Equal(t, []entry{{0, 0, 0.5}, {1, 1, -0.5}}, entries(m))
}

func TestPauliLindbladNoiseSuperoperator_Dephasing(t *testing.T) {
	noise := spins.NewPauliLindbladNoiseOperator()
	z := spins.NewDecoherenceProduct().Z(0)
	gamma := 0.5
	require.NoError(t, noise.Set(z, z, coeff.FromFloat(gamma)))

	m, err := spins.PauliLindbladNoiseSuperoperator(noise, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), m.Dim)
	// Z dephasing: γ(ZρZ - ρ) damps only the off-diagonal density-matrix
	// slots, at rate 2γ.
	require.Equal(t, []entry{
		{1, 1, complex(-2*gamma, 0)},
		{2, 2, complex(-2*gamma, 0)},
	}, entries(m))
}

func TestPauliLindbladNoiseSuperoperator_TracePreserving(t *testing.T) {
	noise := spins.NewPauliLindbladNoiseOperator()
	// Decay-like noise with an off-diagonal jump: L = R = X.
	x := spins.NewDecoherenceProduct().X(0)
	require.NoError(t, noise.Set(x, x, coeff.FromFloat(1)))

	m, err := spins.PauliLindbladNoiseSuperoperator(noise, 1)
	require.NoError(t, err)

	// Column sums over vec indices of ρ diagonal slots must vanish:
	// the dissipator preserves the trace.
	dim := int64(2)
	for _, col := range []int64{0, 3} {
		var sum complex128
		for i := range m.Values {
			// Trace reads vec slots (k, k): row index k*dim+k.
			if m.Cols[i] == col && m.Rows[i]%(dim+1) == 0 {
				sum += m.Values[i]
			}
		}
		require.Equal(t, complex128(0), sum, "column %d", col)
	}
}

func TestPauliLindbladOpenSystemSuperoperator_CoherentPart(t *testing.T) {
	sys := spins.NewPauliLindbladOpenSystem()
	require.NoError(t, sys.SystemAdd(mustParsePauli(t, "0Z"), coeff.One))

	m, err := spins.PauliLindbladOpenSystemSuperoperator(sys, 1)
	require.NoError(t, err)
	// -i[Z, ρ] rotates the off-diagonal slots in opposite directions.
	require.Equal(t, []entry{
		{1, 1, 2i},
		{2, 2, -2i},
	}, entries(m))
}

func TestPauliLindbladOpenSystemSuperoperator_CombinesParts(t *testing.T) {
	sys := spins.NewPauliLindbladOpenSystem()
	require.NoError(t, sys.SystemAdd(mustParsePauli(t, "0Z"), coeff.One))
	z := spins.NewDecoherenceProduct().Z(0)
	require.NoError(t, sys.NoiseAdd(z, z, coeff.FromFloat(0.5)))

	m, err := spins.PauliLindbladOpenSystemSuperoperator(sys, 1)
	require.NoError(t, err)
	require.Equal(t, []entry{
		{1, 1, complex(-1, 2)},
		{2, 2, complex(-1, -2)},
	}, entries(m))
}
