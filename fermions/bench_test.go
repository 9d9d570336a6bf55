package fermions_test

import (
	"testing"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/fermions"
	"github.com/katalvlaran/qualg/operators"
)

// BenchmarkFermionProduct_Mul measures normal ordering of two 16-mode
// words with eight contractable mode pairs (256 summands).
func BenchmarkFermionProduct_Mul(b *testing.B) {
	const modes = 16
	var even, odd []int
	for m := 0; m < modes; m += 2 {
		even = append(even, m)
		odd = append(odd, m+1)
	}
	left, err := fermions.NewFermionProduct(even, odd)
	if err != nil {
		b.Fatal(err)
	}
	right, err := fermions.NewFermionProduct(odd, even)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = left.Mul(right)
	}
}

// BenchmarkFermionOperator_Mul measures the container product of two
// hopping chains over 32 modes.
func BenchmarkFermionOperator_Mul(b *testing.B) {
	const modes = 32
	left := fermions.NewFermionOperator()
	right := fermions.NewFermionOperator()
	for m := 0; m+1 < modes; m++ {
		hop, err := fermions.NewFermionProduct([]int{m}, []int{m + 1})
		if err != nil {
			b.Fatal(err)
		}
		back, err := fermions.NewFermionProduct([]int{m + 1}, []int{m})
		if err != nil {
			b.Fatal(err)
		}
		_ = left.Set(hop, coeff.FromFloat(0.5))
		_ = right.Set(back, coeff.FromFloat(0.5))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = operators.Mul(left, right)
	}
}
