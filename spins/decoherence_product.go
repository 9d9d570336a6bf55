// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/qualg/coeff"
	"github.com/katalvlaran/qualg/operators"
)

// DecoherenceProduct is a canonical product of single-site decoherence
// operators {X, iY, Z} over a sorted sparse set of sites. Products of
// decoherence products stay inside the basis with real prefactors ±1,
// which makes these the canonical keys for Lindblad noise pairs.
type DecoherenceProduct struct {
	entries []siteEntry
}

// DecoherenceAssignment is one (site, operator) input of a merging
// constructor.
type DecoherenceAssignment struct {
	Site int
	Op   SingleDecoherenceOperator
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// NewDecoherenceProductFromAssignments builds a canonical product from a
// sequence of assignments, merging repeated sites via the single-site
// table and returning the accumulated real prefactor.
func NewDecoherenceProductFromAssignments(ops []DecoherenceAssignment) (DecoherenceProduct, coeff.Coefficient, error) {
	bySite := make(map[int]SingleDecoherenceOperator)
	phase := coeff.One
	for _, a := range ops {
		if a.Site < 0 {
			return DecoherenceProduct{}, coeff.Zero, fmt.Errorf("site %d: %w", a.Site, ErrNegativeSite)
		}
		merged, factor := mulDecoherence(bySite[a.Site], a.Op)
		phase *= factor
		if merged == DecoherenceI {
			delete(bySite, a.Site)
		} else {
			bySite[a.Site] = merged
		}
	}

	entries := make([]siteEntry, 0, len(bySite))
	for site, op := range bySite {
		entries = append(entries, siteEntry{site: site, tag: uint8(op)})
	}
	sorted, err := sortEntries(entries)
	if err != nil {
		return DecoherenceProduct{}, coeff.Zero, err
	}

	return DecoherenceProduct{entries: sorted}, phase, nil
}

// ParseDecoherenceProduct parses the canonical grammar: "I" or tokens
// like "0X1iY2Z". Duplicate sites are rejected.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	tokens, err := tokenizeProduct(s)
	if err != nil {
		return DecoherenceProduct{}, err
	}
	entries := make([]siteEntry, 0, len(tokens))
	for _, tok := range tokens {
		op, symErr := ParseSingleDecoherenceOperator(tok.symbol)
		if symErr != nil {
			return DecoherenceProduct{}, fmt.Errorf("%w: %v", ErrParse, symErr)
		}
		if op == DecoherenceI {
			continue
		}
		entries = append(entries, siteEntry{site: tok.site, tag: uint8(op)})
	}
	sorted, err := sortEntries(entries)
	if err != nil {
		return DecoherenceProduct{}, err
	}

	return DecoherenceProduct{entries: sorted}, nil
}

// SetDecoherence returns a copy with the operator at site replaced.
// Panics on a negative site.
func (d DecoherenceProduct) SetDecoherence(site int, op SingleDecoherenceOperator) DecoherenceProduct {
	if site < 0 {
		panic("spins: SetDecoherence on negative site")
	}
	entries := make([]siteEntry, 0, len(d.entries)+1)
	inserted := false
	for _, e := range d.entries {
		switch {
		case e.site == site:
			inserted = true
			if op != DecoherenceI {
				entries = append(entries, siteEntry{site: site, tag: uint8(op)})
			}
		case e.site > site && !inserted:
			inserted = true
			if op != DecoherenceI {
				entries = append(entries, siteEntry{site: site, tag: uint8(op)})
			}
			entries = append(entries, e)
		default:
			entries = append(entries, e)
		}
	}
	if !inserted && op != DecoherenceI {
		entries = append(entries, siteEntry{site: site, tag: uint8(op)})
	}

	return DecoherenceProduct{entries: entries}
}

// X returns a copy with X at site.
func (d DecoherenceProduct) X(site int) DecoherenceProduct {
	return d.SetDecoherence(site, DecoherenceX)
}

// IY returns a copy with iY at site.
func (d DecoherenceProduct) IY(site int) DecoherenceProduct {
	return d.SetDecoherence(site, DecoherenceIY)
}

// Z returns a copy with Z at site.
func (d DecoherenceProduct) Z(site int) DecoherenceProduct {
	return d.SetDecoherence(site, DecoherenceZ)
}

// Get returns the operator at site, identity if absent.
func (d DecoherenceProduct) Get(site int) SingleDecoherenceOperator {
	for _, e := range d.entries {
		if e.site == site {
			return SingleDecoherenceOperator(e.tag)
		}
		if e.site > site {
			break
		}
	}

	return DecoherenceI
}

// Len returns the number of non-identity entries.
func (d DecoherenceProduct) Len() int { return len(d.entries) }

// String renders the canonical form, "I" for the identity.
func (d DecoherenceProduct) String() string {
	if len(d.entries) == 0 {
		return "I"
	}
	out := make([]byte, 0, 4*len(d.entries))
	for _, e := range d.entries {
		out = fmt.Appendf(out, "%d%s", e.site, SingleDecoherenceOperator(e.tag))
	}

	return string(out)
}

// FromString parses the canonical grammar; the receiver is ignored.
func (DecoherenceProduct) FromString(s string) (DecoherenceProduct, error) {
	return ParseDecoherenceProduct(s)
}

// Compare implements the total key order.
func (d DecoherenceProduct) Compare(other DecoherenceProduct) int {
	return compareEntries(d.entries, other.entries)
}

// countIY returns the number of iY entries, which controls hermiticity:
// (iY)† = -iY, so the conjugation phase is (-1)^countIY.
func (d DecoherenceProduct) countIY() int {
	n := 0
	for _, e := range d.entries {
		if SingleDecoherenceOperator(e.tag) == DecoherenceIY {
			n++
		}
	}

	return n
}

// Conjugate returns the hermitian conjugate: the key is unchanged, the
// phase is -1 per iY entry.
func (d DecoherenceProduct) Conjugate() (DecoherenceProduct, coeff.Coefficient) {
	if d.countIY()%2 == 1 {
		return d, -coeff.One
	}

	return d, coeff.One
}

// IsNaturalHermitian reports whether the product carries an even number
// of iY entries.
func (d DecoherenceProduct) IsNaturalHermitian() bool { return d.countIY()%2 == 0 }

// MinCapacity returns the highest assigned site plus one.
func (d DecoherenceProduct) MinCapacity() int { return minCapacityOf(d.entries) }

// Mul multiplies two decoherence products site-by-site. The result is a
// single canonical key with a real prefactor ±1.
func (d DecoherenceProduct) Mul(other DecoherenceProduct) ([]operators.Term[DecoherenceProduct], error) {
	entries := make([]siteEntry, 0, len(d.entries)+len(other.entries))
	phase := coeff.One

	i, j := 0, 0
	for i < len(d.entries) && j < len(other.entries) {
		a, b := d.entries[i], other.entries[j]
		switch {
		case a.site < b.site:
			entries = append(entries, a)
			i++
		case a.site > b.site:
			entries = append(entries, b)
			j++
		default:
			merged, factor := mulDecoherence(SingleDecoherenceOperator(a.tag), SingleDecoherenceOperator(b.tag))
			phase *= factor
			if merged != DecoherenceI {
				entries = append(entries, siteEntry{site: a.site, tag: uint8(merged)})
			}
			i++
			j++
		}
	}
	entries = append(entries, d.entries[i:]...)
	entries = append(entries, other.entries[j:]...)

	return []operators.Term[DecoherenceProduct]{
		{Key: DecoherenceProduct{entries: entries}, Value: phase},
	}, nil
}
