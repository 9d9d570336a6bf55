// SPDX-License-Identifier: MIT

// Package coeff defines the scalar coefficient type used as a term weight
// throughout qualg.
//
// A Coefficient is a complex number with ring operations, complex
// conjugation, real/imaginary decomposition and an exact zero test. The
// zero test is exact (bit-wise, not epsilon-based): containers rely on it
// to uphold the never-store-zero invariant, and the algebraic tables in
// the product packages only ever produce exactly representable phases
// (±1, ±i, dyadic fractions), so no tolerance is required.
//
// Arbitrary-precision and symbolic coefficients are an external
// collaborator concern; this package is the resident representation.
package coeff

import (
	"encoding/json"
	"fmt"
	"math/cmplx"
	"strconv"
)

// Coefficient is a complex scalar ring element. The zero value is the
// additive identity.
type Coefficient complex128

// Common constants.
const (
	// Zero is the additive identity.
	Zero Coefficient = 0

	// One is the multiplicative identity.
	One Coefficient = 1

	// I is the imaginary unit.
	I Coefficient = 1i
)

// FromFloat builds a purely real Coefficient.
func FromFloat(re float64) Coefficient { return Coefficient(complex(re, 0)) }

// FromParts builds a Coefficient from real and imaginary parts.
func FromParts(re, im float64) Coefficient { return Coefficient(complex(re, im)) }

// Re returns the real part.
func (c Coefficient) Re() float64 { return real(complex128(c)) }

// Im returns the imaginary part.
func (c Coefficient) Im() float64 { return imag(complex128(c)) }

// Conj returns the complex conjugate.
func (c Coefficient) Conj() Coefficient { return Coefficient(cmplx.Conj(complex128(c))) }

// Abs returns the modulus |c|.
func (c Coefficient) Abs() float64 { return cmplx.Abs(complex128(c)) }

// IsZero reports whether c is exactly the additive identity.
func (c Coefficient) IsZero() bool { return c == 0 }

// IsReal reports whether the imaginary part is exactly zero.
func (c Coefficient) IsReal() bool { return imag(complex128(c)) == 0 }

// String renders the coefficient as "re" for real values and "(re+imi)"
// otherwise, with the shortest float representation that round-trips.
func (c Coefficient) String() string {
	re := strconv.FormatFloat(c.Re(), 'g', -1, 64)
	if c.IsReal() {
		return re
	}
	im := strconv.FormatFloat(c.Im(), 'g', -1, 64)
	if c.Im() >= 0 {
		return fmt.Sprintf("(%s+%si)", re, im)
	}

	return fmt.Sprintf("(%s%si)", re, im)
}

// MarshalJSON encodes the coefficient as a two-element [re, im] array.
func (c Coefficient) MarshalJSON() ([]byte, error) {
	re := strconv.FormatFloat(c.Re(), 'g', -1, 64)
	im := strconv.FormatFloat(c.Im(), 'g', -1, 64)

	return []byte("[" + re + "," + im + "]"), nil
}

// UnmarshalJSON decodes a two-element [re, im] array.
func (c *Coefficient) UnmarshalJSON(data []byte) error {
	var parts [2]float64
	if err := unmarshalPair(data, &parts); err != nil {
		return err
	}
	*c = FromParts(parts[0], parts[1])

	return nil
}

// unmarshalPair parses a strict two-element JSON number array without
// pulling reflection-heavy decoding into the hot path.
func unmarshalPair(data []byte, out *[2]float64) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("coeff: malformed coefficient %q: %w", string(data), err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("coeff: coefficient must be a [re, im] pair, got %d elements", len(raw))
	}
	out[0], out[1] = raw[0], raw[1]

	return nil
}
