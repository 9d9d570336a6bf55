// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"sort"
)

// maxMatrixSpins bounds materialization: beyond 30 spins the 2^n (or 4^n
// superoperator) dimension no longer fits practical memory or an int64
// flat index.
const maxMatrixSpins = 30

// SparseMatrix is a coordinate-list (COO) sparse matrix on the full
// Hilbert space: parallel Values/Rows/Cols slices plus the dimension.
// Entries are emitted in deterministic row-major order (row, then
// column), with exact-zero values dropped.
//
// Basis convention: site s maps to bit s of the basis-state index, and
// bit 0 selects the +1 eigenstate of Z.
type SparseMatrix struct {
	Dim    int64
	Values []complex128
	Rows   []int64
	Cols   []int64
}

// cooAccumulator collects (row, col) → value sums before deterministic
// emission.
type cooAccumulator struct {
	dim     int64
	entries map[int64]complex128 // flat row*dim+col index
}

func newCOOAccumulator(dim int64) *cooAccumulator {
	return &cooAccumulator{dim: dim, entries: make(map[int64]complex128)}
}

func (a *cooAccumulator) add(row, col int64, v complex128) {
	if v == 0 {
		return
	}
	flat := row*a.dim + col
	sum := a.entries[flat] + v
	if sum == 0 {
		delete(a.entries, flat)

		return
	}
	a.entries[flat] = sum
}

func (a *cooAccumulator) emit() SparseMatrix {
	flats := make([]int64, 0, len(a.entries))
	for flat := range a.entries {
		flats = append(flats, flat)
	}
	sort.Slice(flats, func(i, j int) bool { return flats[i] < flats[j] })

	out := SparseMatrix{
		Dim:    a.dim,
		Values: make([]complex128, len(flats)),
		Rows:   make([]int64, len(flats)),
		Cols:   make([]int64, len(flats)),
	}
	for i, flat := range flats {
		out.Rows[i] = flat / a.dim
		out.Cols[i] = flat % a.dim
		out.Values[i] = a.entries[flat]
	}

	return out
}

// validateMatrixSize checks the requested system size against the
// operator's current extent and the materialization bound.
func validateMatrixSize(current, nSpins int) error {
	if nSpins < 0 || nSpins > maxMatrixSpins {
		return fmt.Errorf("system size %d outside [0, %d]: %w", nSpins, maxMatrixSpins, ErrMatrixDimension)
	}
	if current > nSpins {
		return fmt.Errorf("operator touches %d spins, requested %d: %w", current, nSpins, ErrMatrixDimension)
	}

	return nil
}

// pauliAction applies a Pauli product to basis state col: one output
// basis state (X/Y flip bits) and a phase.
func pauliAction(p PauliProduct, col int64) (row int64, val complex128) {
	row, val = col, 1
	for _, e := range p.entries {
		bit := (col >> uint(e.site)) & 1
		switch SinglePauliOperator(e.tag) {
		case PauliX:
			row ^= 1 << uint(e.site)
		case PauliY:
			row ^= 1 << uint(e.site)
			if bit == 0 {
				val *= 1i
			} else {
				val *= -1i
			}
		case PauliZ:
			if bit == 1 {
				val = -val
			}
		}
	}

	return row, val
}

// decoherenceAction applies a decoherence product to basis state col.
// All phases are real: iY maps |0⟩ to -|1⟩ and |1⟩ to |0⟩.
func decoherenceAction(d DecoherenceProduct, col int64) (row int64, val complex128) {
	row, val = col, 1
	for _, e := range d.entries {
		bit := (col >> uint(e.site)) & 1
		switch SingleDecoherenceOperator(e.tag) {
		case DecoherenceX:
			row ^= 1 << uint(e.site)
		case DecoherenceIY:
			row ^= 1 << uint(e.site)
			if bit == 0 {
				val = -val
			}
		case DecoherenceZ:
			if bit == 1 {
				val = -val
			}
		}
	}

	return row, val
}

// countY returns the number of Y entries; conj(matrix(p)) differs from
// matrix(p) by (-1)^countY, which transposition of a hermitian product
// also equals.
func (p PauliProduct) countY() int {
	n := 0
	for _, e := range p.entries {
		if SinglePauliOperator(e.tag) == PauliY {
			n++
		}
	}

	return n
}

// PauliOperatorSparseMatrix materializes a Pauli operator on the full
// 2^nSpins Hilbert space as a COO matrix. O(|terms|·2^n) work.
func PauliOperatorSparseMatrix(op *PauliOperator, nSpins int) (SparseMatrix, error) {
	if err := validateMatrixSize(op.CurrentCapacity(), nSpins); err != nil {
		return SparseMatrix{}, err
	}
	dim := int64(1) << uint(nSpins)
	acc := newCOOAccumulator(dim)
	for _, t := range op.Terms() {
		v := complex128(t.Value)
		for col := int64(0); col < dim; col++ {
			row, val := pauliAction(t.Key, col)
			acc.add(row, col, v*val)
		}
	}

	return acc.emit(), nil
}

// PauliHamiltonianSparseMatrix materializes a PauliHamiltonian via its
// full operator expansion.
func PauliHamiltonianSparseMatrix(h *PauliHamiltonian, nSpins int) (SparseMatrix, error) {
	return PauliOperatorSparseMatrix(h.ToOperator(), nSpins)
}

// superKron adds v·kron(slow, fast) to the accumulator, where slow and
// fast act by the provided column actions on the 2^n factor spaces of a
// column-stacked density-matrix vector (fast = left multiplication
// index, slow = right multiplication index).
func superKron(
	acc *cooAccumulator,
	dim int64,
	v complex128,
	slow, fast func(int64) (int64, complex128),
) {
	for j := int64(0); j < dim; j++ {
		rowSlow, valSlow := slow(j)
		for i := int64(0); i < dim; i++ {
			rowFast, valFast := fast(i)
			acc.add(rowSlow*dim+rowFast, j*dim+i, v*valSlow*valFast)
		}
	}
}

// identityAction is the trivial column action.
func identityAction(col int64) (int64, complex128) { return col, 1 }

// PauliLindbladNoiseSuperoperator materializes the dissipator sum as a
// superoperator on the column-stacked density matrix (dimension
// 4^nSpins): each term (L, R, v) contributes
//
//	v·( R̄ ⊗ L − ½ I ⊗ R†L − ½ (R†L)ᵀ ⊗ I )
//
// Decoherence-product matrices are real, which keeps every factor inside
// the decoherence algebra.
func PauliLindbladNoiseSuperoperator(noise *PauliLindbladNoiseOperator, nSpins int) (SparseMatrix, error) {
	if err := validateMatrixSize(noise.CurrentCapacity(), nSpins); err != nil {
		return SparseMatrix{}, err
	}
	dim := int64(1) << uint(nSpins)
	acc := newCOOAccumulator(dim * dim)

	for _, t := range noise.Terms() {
		left, right := t.Pair.Left, t.Pair.Right
		v := complex128(t.Value)

		// Sandwich part: R̄ ⊗ L with R̄ = R for a real matrix.
		leftAct := func(col int64) (int64, complex128) { return decoherenceAction(left, col) }
		rightAct := func(col int64) (int64, complex128) { return decoherenceAction(right, col) }
		superKron(acc, dim, v, rightAct, leftAct)

		// Anticommutator parts need M = R†L, a single decoherence term.
		rdag, phase := right.Conjugate()
		products, err := rdag.Mul(left)
		if err != nil {
			return SparseMatrix{}, err
		}
		for _, p := range products {
			m := p.Key
			mv := complex128(phase * p.Value)
			mAct := func(col int64) (int64, complex128) { return decoherenceAction(m, col) }
			superKron(acc, dim, -0.5*v*mv, identityAction, mAct)
			// Mᵀ = M† for a real matrix, and conjugating a decoherence
			// product only flips the sign per iY entry.
			_, mPhase := m.Conjugate()
			superKron(acc, dim, -0.5*v*mv*complex128(mPhase), mAct, identityAction)
		}
	}

	return acc.emit(), nil
}

// PauliLindbladOpenSystemSuperoperator materializes the full generator
// -i[H, ρ] plus the dissipator as a superoperator of dimension 4^nSpins.
func PauliLindbladOpenSystemSuperoperator(sys *PauliLindbladOpenSystem, nSpins int) (SparseMatrix, error) {
	if err := validateMatrixSize(sys.CurrentCapacity(), nSpins); err != nil {
		return SparseMatrix{}, err
	}
	dim := int64(1) << uint(nSpins)
	acc := newCOOAccumulator(dim * dim)

	// Coherent part: -i(I ⊗ H − Hᵀ ⊗ I) with Hᵀ = (-1)^countY per product.
	for _, t := range sys.System().ToOperator().Terms() {
		p := t.Key
		v := complex128(t.Value)
		pAct := func(col int64) (int64, complex128) { return pauliAction(p, col) }
		superKron(acc, dim, -1i*v, identityAction, pAct)
		transposeSign := complex128(1)
		if p.countY()%2 == 1 {
			transposeSign = -1
		}
		superKron(acc, dim, 1i*v*transposeSign, pAct, identityAction)
	}

	// Dissipator part.
	noise, err := PauliLindbladNoiseSuperoperator(sys.Noise(), nSpins)
	if err != nil {
		return SparseMatrix{}, err
	}
	for i := range noise.Values {
		acc.add(noise.Rows[i], noise.Cols[i], noise.Values[i])
	}

	return acc.emit(), nil
}
