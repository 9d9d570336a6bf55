// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qualg/bosons"
	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/fermions"
	"github.com/katalvlaran/qualg/operators"
	"github.com/katalvlaran/qualg/spins"
)

// MixedProduct is a tensor product of canonical factors over a fixed
// composite system layout: some number of spin subsystems, then boson
// subsystems, then fermion subsystems. The zero value is the product
// with no subsystems.
type MixedProduct struct {
	spins    []spins.PauliProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// NewMixedProduct assembles a mixed product from already-canonical
// subsystem factors; the slice lengths fix the composite layout.
func NewMixedProduct(
	spinFactors []spins.PauliProduct,
	bosonFactors []bosons.BosonProduct,
	fermionFactors []fermions.FermionProduct,
) MixedProduct {
	return MixedProduct{
		spins:    append([]spins.PauliProduct{}, spinFactors...),
		bosons:   append([]bosons.BosonProduct{}, bosonFactors...),
		fermions: append([]fermions.FermionProduct{}, fermionFactors...),
	}
}

// ParseMixedProduct parses the segmented grammar: "I" for the empty
// layout, otherwise colon-separated segments prefixed S, B or F in kind
// order, each carrying the subsystem's canonical product text.
func ParseMixedProduct(s string) (MixedProduct, error) {
	if s == "" {
		return MixedProduct{}, fmt.Errorf("empty input: %w", ErrParse)
	}
	if s == "I" {
		return MixedProduct{}, nil
	}

	var p MixedProduct
	for _, segment := range strings.Split(s, ":") {
		if len(segment) < 2 {
			return MixedProduct{}, fmt.Errorf("segment %q: %w", segment, ErrParse)
		}
		kind, body := segment[0], segment[1:]
		switch kind {
		case 'S':
			if len(p.bosons) > 0 || len(p.fermions) > 0 {
				return MixedProduct{}, fmt.Errorf("spin segment after boson or fermion segment: %w", ErrParse)
			}
			factor, err := spins.ParsePauliProduct(body)
			if err != nil {
				return MixedProduct{}, fmt.Errorf("segment %q: %w", segment, err)
			}
			p.spins = append(p.spins, factor)
		case 'B':
			if len(p.fermions) > 0 {
				return MixedProduct{}, fmt.Errorf("boson segment after fermion segment: %w", ErrParse)
			}
			factor, err := bosons.ParseBosonProduct(body)
			if err != nil {
				return MixedProduct{}, fmt.Errorf("segment %q: %w", segment, err)
			}
			p.bosons = append(p.bosons, factor)
		case 'F':
			factor, err := fermions.ParseFermionProduct(body)
			if err != nil {
				return MixedProduct{}, fmt.Errorf("segment %q: %w", segment, err)
			}
			p.fermions = append(p.fermions, factor)
		default:
			return MixedProduct{}, fmt.Errorf("segment %q: unknown kind %q: %w", segment, kind, ErrParse)
		}
	}

	return p, nil
}

// NumberSpinSubsystems returns the spin subsystem count.
func (p MixedProduct) NumberSpinSubsystems() int { return len(p.spins) }

// NumberBosonSubsystems returns the boson subsystem count.
func (p MixedProduct) NumberBosonSubsystems() int { return len(p.bosons) }

// NumberFermionSubsystems returns the fermion subsystem count.
func (p MixedProduct) NumberFermionSubsystems() int { return len(p.fermions) }

// Spin returns the factor of spin subsystem i.
func (p MixedProduct) Spin(i int) spins.PauliProduct { return p.spins[i] }

// Boson returns the factor of boson subsystem i.
func (p MixedProduct) Boson(i int) bosons.BosonProduct { return p.bosons[i] }

// Fermion returns the factor of fermion subsystem i.
func (p MixedProduct) Fermion(i int) fermions.FermionProduct { return p.fermions[i] }

// sameLayout reports whether both products live on the same composite
// system.
func (p MixedProduct) sameLayout(other MixedProduct) bool {
	return len(p.spins) == len(other.spins) &&
		len(p.bosons) == len(other.bosons) &&
		len(p.fermions) == len(other.fermions)
}

// String renders the segmented canonical form, "I" for the empty
// layout.
func (p MixedProduct) String() string {
	total := len(p.spins) + len(p.bosons) + len(p.fermions)
	if total == 0 {
		return "I"
	}
	parts := make([]string, 0, total)
	for _, f := range p.spins {
		parts = append(parts, "S"+f.String())
	}
	for _, f := range p.bosons {
		parts = append(parts, "B"+f.String())
	}
	for _, f := range p.fermions {
		parts = append(parts, "F"+f.String())
	}

	return strings.Join(parts, ":")
}

// FromString parses the segmented grammar; the receiver is ignored.
func (MixedProduct) FromString(s string) (MixedProduct, error) {
	return ParseMixedProduct(s)
}

// Compare implements the total key order: layout first (spin, boson,
// fermion counts), then subsystem factors in order.
func (p MixedProduct) Compare(other MixedProduct) int {
	if d := len(p.spins) - len(other.spins); d != 0 {
		return d
	}
	if d := len(p.bosons) - len(other.bosons); d != 0 {
		return d
	}
	if d := len(p.fermions) - len(other.fermions); d != 0 {
		return d
	}
	for i := range p.spins {
		if d := p.spins[i].Compare(other.spins[i]); d != 0 {
			return d
		}
	}
	for i := range p.bosons {
		if d := p.bosons[i].Compare(other.bosons[i]); d != 0 {
			return d
		}
	}
	for i := range p.fermions {
		if d := p.fermions[i].Compare(other.fermions[i]); d != 0 {
			return d
		}
	}

	return 0
}

// Conjugate conjugates every subsystem factor and multiplies the
// subsystem phases.
func (p MixedProduct) Conjugate() (MixedProduct, coeff.Coefficient) {
	out := MixedProduct{
		spins:    make([]spins.PauliProduct, len(p.spins)),
		bosons:   make([]bosons.BosonProduct, len(p.bosons)),
		fermions: make([]fermions.FermionProduct, len(p.fermions)),
	}
	phase := coeff.One
	for i, f := range p.spins {
		k, ph := f.Conjugate()
		out.spins[i] = k
		phase *= ph
	}
	for i, f := range p.bosons {
		k, ph := f.Conjugate()
		out.bosons[i] = k
		phase *= ph
	}
	for i, f := range p.fermions {
		k, ph := f.Conjugate()
		out.fermions[i] = k
		phase *= ph
	}

	return out, phase
}

// IsNaturalHermitian reports whether the product is its own conjugate
// with phase one. Subsystem-wise naturality is not required: two
// fermion factors with sign -1 each still combine to a natural key.
func (p MixedProduct) IsNaturalHermitian() bool {
	conj, phase := p.Conjugate()

	return p.Compare(conj) == 0 && phase == coeff.One
}

// MinCapacity returns the largest per-subsystem extent; a declared
// bound applies to every subsystem of a mixed container alike.
func (p MixedProduct) MinCapacity() int {
	capacity := 0
	for _, f := range p.spins {
		if c := f.MinCapacity(); c > capacity {
			capacity = c
		}
	}
	for _, f := range p.bosons {
		if c := f.MinCapacity(); c > capacity {
			capacity = c
		}
	}
	for _, f := range p.fermions {
		if c := f.MinCapacity(); c > capacity {
			capacity = c
		}
	}

	return capacity
}

// Mul multiplies subsystem-by-subsystem and expands the per-subsystem
// term lists as a cartesian product. Operands on different composite
// layouts do not multiply.
func (p MixedProduct) Mul(other MixedProduct) ([]operators.Term[MixedProduct], error) {
	if !p.sameLayout(other) {
		return nil, fmt.Errorf(
			"left (%d,%d,%d) vs right (%d,%d,%d): %w",
			len(p.spins), len(p.bosons), len(p.fermions),
			len(other.spins), len(other.bosons), len(other.fermions),
			ErrSubsystemMismatch,
		)
	}

	branches := []operators.Term[MixedProduct]{{
		Key: MixedProduct{
			spins:    make([]spins.PauliProduct, 0, len(p.spins)),
			bosons:   make([]bosons.BosonProduct, 0, len(p.bosons)),
			fermions: make([]fermions.FermionProduct, 0, len(p.fermions)),
		},
		Value: coeff.One,
	}}

	for i := range p.spins {
		products, err := p.spins[i].Mul(other.spins[i])
		if err != nil {
			return nil, err
		}
		branches = extendBranches(branches, products, func(k MixedProduct, f spins.PauliProduct) MixedProduct {
			k.spins = append(k.spins, f)

			return k
		})
	}
	for i := range p.bosons {
		products, err := p.bosons[i].Mul(other.bosons[i])
		if err != nil {
			return nil, err
		}
		branches = extendBranches(branches, products, func(k MixedProduct, f bosons.BosonProduct) MixedProduct {
			k.bosons = append(k.bosons, f)

			return k
		})
	}
	for i := range p.fermions {
		products, err := p.fermions[i].Mul(other.fermions[i])
		if err != nil {
			return nil, err
		}
		branches = extendBranches(branches, products, func(k MixedProduct, f fermions.FermionProduct) MixedProduct {
			k.fermions = append(k.fermions, f)

			return k
		})
	}

	out := branches[:0]
	for _, br := range branches {
		if br.Value.IsZero() {
			continue
		}
		out = append(out, br)
	}

	return out, nil
}

// extendBranches crosses the in-flight branches with one subsystem's
// term list.
func extendBranches[F any](
	branches []operators.Term[MixedProduct],
	products []operators.Term[F],
	attach func(MixedProduct, F) MixedProduct,
) []operators.Term[MixedProduct] {
	next := make([]operators.Term[MixedProduct], 0, len(branches)*len(products))
	for _, br := range branches {
		for _, prod := range products {
			key := MixedProduct{
				spins:    append([]spins.PauliProduct{}, br.Key.spins...),
				bosons:   append([]bosons.BosonProduct{}, br.Key.bosons...),
				fermions: append([]fermions.FermionProduct{}, br.Key.fermions...),
			}
			next = append(next, operators.Term[MixedProduct]{
				Key:   attach(key, prod.Key),
				Value: br.Value * prod.Value,
			})
		}
	}

	return next
}
