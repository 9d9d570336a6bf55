package mappings_test

import (
	"fmt"

	"github.com/katalvlaran/qualg/bosons"
	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/fermions"
	"github.com/katalvlaran/qualg/mappings"
)

// ExampleJordanWignerFermionOperator maps the scaled occupation 2·n0
// onto spins: n0 = c0 a0 becomes (I - Z0)/2.
func ExampleJordanWignerFermionOperator() {
	op := fermions.NewFermionOperator()
	n0, _ := fermions.NewFermionProduct([]int{0}, []int{0})
	_ = op.Set(n0, coeff.FromFloat(2))

	image, _ := mappings.JordanWignerFermionOperator(op)
	for _, k := range image.Keys() {
		fmt.Printf("%s %g\n", k, image.Get(k).Re())
	}
	// Output:
	// I 1
	// 0Z -1
}

// ExampleBosonHamiltonianToSpin represents one bosonic mode by a single
// replica spin: the occupation n0 becomes (I + Z0)/2.
func ExampleBosonHamiltonianToSpin() {
	h := bosons.NewBosonHamiltonian()
	n0, _ := bosons.NewHermitianBosonProduct([]int{0}, []int{0})
	_ = h.Set(n0, coeff.FromFloat(5))

	image, _ := mappings.BosonHamiltonianToSpin(h, mappings.DefaultDickeOptions())
	for _, k := range image.Keys() {
		fmt.Printf("%s %g\n", k, image.Get(k).Re())
	}
	// Output:
	// I 2.5
	// 0Z 2.5
}
