// SPDX-License-Identifier: MIT

// Package operators: versioned serialization.
// Structured form is JSON (schema structs below); the compact binary form
// is CBOR over the same schema. Both directions are value-preserving:
// serialize∘deserialize is the identity, and deserialization rejects
// structurally invalid input (duplicate keys, zero coefficients,
// unparseable or non-canonical keys) instead of silently normalizing it.

package operators

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/qualg/coeff"
)

// SchemaVersion tags every serialized container produced by this build.
const SchemaVersion = "2.0.0"

// MinSupportedVersion is the oldest schema version readable by the
// regular deserializers. Older forms go through ImportLegacyOperator.
func MinSupportedVersion() string { return "2.0.0" }

type schemaMeta struct {
	Version string `json:"version"`
}

type operatorItem struct {
	Key string  `json:"key"`
	Re  float64 `json:"re"`
	Im  float64 `json:"im"`
}

type operatorSchema struct {
	Items    []operatorItem `json:"items"`
	Capacity *int           `json:"capacity,omitempty"`
	Meta     schemaMeta     `json:"serialization_meta"`
}

type noiseItem struct {
	Left  string  `json:"left"`
	Right string  `json:"right"`
	Re    float64 `json:"re"`
	Im    float64 `json:"im"`
}

type noiseSchema struct {
	Items    []noiseItem `json:"items"`
	Capacity *int        `json:"capacity,omitempty"`
	Meta     schemaMeta  `json:"serialization_meta"`
}

type openSystemSchema struct {
	System json.RawMessage `json:"system"`
	Noise  json.RawMessage `json:"noise"`
	Meta   schemaMeta      `json:"serialization_meta"`
}

// parseMajor extracts the major component of a "major.minor.patch" tag.
func parseMajor(version string) (int, error) {
	head, _, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("version tag %q: %w", version, ErrUnsupportedVersion)
	}

	return major, nil
}

// checkVersion admits exactly the current schema major.
func checkVersion(version string) error {
	major, err := parseMajor(version)
	if err != nil {
		return err
	}
	if major != 2 {
		return fmt.Errorf("version %q, supported from %s: %w",
			version, MinSupportedVersion(), ErrUnsupportedVersion)
	}

	return nil
}

func capacityField(capacity int) *int {
	if capacity == unboundedCapacity {
		return nil
	}
	c := capacity

	return &c
}

func capacityValue(field *int) (int, error) {
	if field == nil {
		return unboundedCapacity, nil
	}
	if *field < 0 {
		return 0, fmt.Errorf("capacity %d: %w", *field, ErrBadCapacity)
	}

	return *field, nil
}

// --- Operator ---------------------------------------------------------

func (o *Operator[K]) schema() operatorSchema {
	items := make([]operatorItem, 0, len(o.terms))
	for _, t := range o.Terms() {
		items = append(items, operatorItem{Key: t.Key.String(), Re: t.Value.Re(), Im: t.Value.Im()})
	}

	return operatorSchema{Items: items, Capacity: capacityField(o.capacity), Meta: schemaMeta{Version: SchemaVersion}}
}

func (o *Operator[K]) fromSchema(s operatorSchema) error {
	if err := checkVersion(s.Meta.Version); err != nil {
		return err
	}
	capacity, err := capacityValue(s.Capacity)
	if err != nil {
		return err
	}
	fresh := Operator[K]{terms: make(map[string]Term[K], len(s.Items)), capacity: capacity}
	var zero K
	for _, item := range s.Items {
		k, parseErr := zero.FromString(item.Key)
		if parseErr != nil {
			return fmt.Errorf("%w: key %q: %v", ErrInvalidSchema, item.Key, parseErr)
		}
		v := coeff.FromParts(item.Re, item.Im)
		if v.IsZero() {
			return fmt.Errorf("%w: zero coefficient on key %q", ErrInvalidSchema, item.Key)
		}
		if _, dup := fresh.terms[k.String()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, item.Key)
		}
		if err = fresh.Set(k, v); err != nil {
			return err
		}
	}
	*o = fresh

	return nil
}

// MarshalJSON encodes the operator as its structured schema form with
// entries in the total key order.
func (o *Operator[K]) MarshalJSON() ([]byte, error) { return json.Marshal(o.schema()) }

// UnmarshalJSON decodes the structured schema form, rejecting duplicate
// keys, zero coefficients, unparseable keys and unsupported versions.
// The receiver is unchanged on error.
func (o *Operator[K]) UnmarshalJSON(data []byte) error {
	var s operatorSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return o.fromSchema(s)
}

// MarshalBinary encodes the operator in the compact CBOR form.
func (o *Operator[K]) MarshalBinary() ([]byte, error) { return cbor.Marshal(o.schema()) }

// UnmarshalBinary decodes the compact CBOR form with the same validation
// as UnmarshalJSON.
func (o *Operator[K]) UnmarshalBinary(data []byte) error {
	var s operatorSchema
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return o.fromSchema(s)
}

// --- Hamiltonian ------------------------------------------------------

func (h *Hamiltonian[H, K]) schema() operatorSchema {
	items := make([]operatorItem, 0, len(h.terms))
	for _, t := range h.Terms() {
		items = append(items, operatorItem{Key: t.Key.String(), Re: t.Value.Re(), Im: t.Value.Im()})
	}

	return operatorSchema{Items: items, Capacity: capacityField(h.capacity), Meta: schemaMeta{Version: SchemaVersion}}
}

func (h *Hamiltonian[H, K]) fromSchema(s operatorSchema) error {
	if err := checkVersion(s.Meta.Version); err != nil {
		return err
	}
	capacity, err := capacityValue(s.Capacity)
	if err != nil {
		return err
	}
	fresh := Hamiltonian[H, K]{terms: make(map[string]Term[H], len(s.Items)), capacity: capacity}
	var zero H
	for _, item := range s.Items {
		// FromString on hermitian key types rejects non-canonical halves,
		// which is exactly the strictness deserialization requires.
		k, parseErr := zero.FromString(item.Key)
		if parseErr != nil {
			return fmt.Errorf("%w: key %q: %v", ErrInvalidSchema, item.Key, parseErr)
		}
		v := coeff.FromParts(item.Re, item.Im)
		if v.IsZero() {
			return fmt.Errorf("%w: zero coefficient on key %q", ErrInvalidSchema, item.Key)
		}
		if _, dup := fresh.terms[k.String()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, item.Key)
		}
		if err = fresh.Set(k, v); err != nil {
			return err
		}
	}
	*h = fresh

	return nil
}

// MarshalJSON encodes the Hamiltonian as its structured schema form.
func (h *Hamiltonian[H, K]) MarshalJSON() ([]byte, error) { return json.Marshal(h.schema()) }

// UnmarshalJSON decodes the structured schema form; non-canonical keys
// and complex coefficients on self-adjoint keys are rejected.
func (h *Hamiltonian[H, K]) UnmarshalJSON(data []byte) error {
	var s operatorSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return h.fromSchema(s)
}

// MarshalBinary encodes the Hamiltonian in the compact CBOR form.
func (h *Hamiltonian[H, K]) MarshalBinary() ([]byte, error) { return cbor.Marshal(h.schema()) }

// UnmarshalBinary decodes the compact CBOR form.
func (h *Hamiltonian[H, K]) UnmarshalBinary(data []byte) error {
	var s operatorSchema
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return h.fromSchema(s)
}

// --- NoiseOperator ----------------------------------------------------

func (n *NoiseOperator[K]) schema() noiseSchema {
	items := make([]noiseItem, 0, len(n.terms))
	for _, t := range n.Terms() {
		items = append(items, noiseItem{
			Left:  t.Pair.Left.String(),
			Right: t.Pair.Right.String(),
			Re:    t.Value.Re(),
			Im:    t.Value.Im(),
		})
	}

	return noiseSchema{Items: items, Capacity: capacityField(n.capacity), Meta: schemaMeta{Version: SchemaVersion}}
}

func (n *NoiseOperator[K]) fromSchema(s noiseSchema) error {
	if err := checkVersion(s.Meta.Version); err != nil {
		return err
	}
	capacity, err := capacityValue(s.Capacity)
	if err != nil {
		return err
	}
	fresh := NoiseOperator[K]{terms: make(map[string]NoiseTerm[K], len(s.Items)), capacity: capacity}
	var zero K
	for _, item := range s.Items {
		left, parseErr := zero.FromString(item.Left)
		if parseErr != nil {
			return fmt.Errorf("%w: left key %q: %v", ErrInvalidSchema, item.Left, parseErr)
		}
		right, parseErr := zero.FromString(item.Right)
		if parseErr != nil {
			return fmt.Errorf("%w: right key %q: %v", ErrInvalidSchema, item.Right, parseErr)
		}
		v := coeff.FromParts(item.Re, item.Im)
		if v.IsZero() {
			return fmt.Errorf("%w: zero coefficient on pair (%q, %q)", ErrInvalidSchema, item.Left, item.Right)
		}
		if _, dup := fresh.terms[pairID(left, right)]; dup {
			return fmt.Errorf("%w: pair (%q, %q)", ErrDuplicateKey, item.Left, item.Right)
		}
		if err = fresh.Set(left, right, v); err != nil {
			return err
		}
	}
	*n = fresh

	return nil
}

// MarshalJSON encodes the noise operator as its structured schema form.
func (n *NoiseOperator[K]) MarshalJSON() ([]byte, error) { return json.Marshal(n.schema()) }

// UnmarshalJSON decodes the structured schema form.
func (n *NoiseOperator[K]) UnmarshalJSON(data []byte) error {
	var s noiseSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return n.fromSchema(s)
}

// MarshalBinary encodes the noise operator in the compact CBOR form.
func (n *NoiseOperator[K]) MarshalBinary() ([]byte, error) { return cbor.Marshal(n.schema()) }

// UnmarshalBinary decodes the compact CBOR form.
func (n *NoiseOperator[K]) UnmarshalBinary(data []byte) error {
	var s noiseSchema
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return n.fromSchema(s)
}

// --- OpenSystem -------------------------------------------------------

// MarshalJSON encodes both parts plus the shared version tag.
func (s *OpenSystem[H, K, N]) MarshalJSON() ([]byte, error) {
	system, err := s.system.MarshalJSON()
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return json.Marshal(openSystemSchema{
		System: system,
		Noise:  noise,
		Meta:   schemaMeta{Version: SchemaVersion},
	})
}

// UnmarshalJSON decodes both parts and re-validates their capacity
// compatibility through Group. The receiver is unchanged on error.
func (s *OpenSystem[H, K, N]) UnmarshalJSON(data []byte) error {
	var raw openSystemSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := checkVersion(raw.Meta.Version); err != nil {
		return err
	}
	system := NewHamiltonian[H, K]()
	if err := system.UnmarshalJSON(raw.System); err != nil {
		return err
	}
	noise := NewNoiseOperator[N]()
	if err := noise.UnmarshalJSON(raw.Noise); err != nil {
		return err
	}
	grouped, err := Group(system, noise)
	if err != nil {
		return err
	}
	*s = *grouped

	return nil
}

// openSystemBinarySchema is the typed CBOR layout of an open system.
type openSystemBinarySchema struct {
	System operatorSchema `json:"system"`
	Noise  noiseSchema    `json:"noise"`
	Meta   schemaMeta     `json:"serialization_meta"`
}

// MarshalBinary encodes the open system in the compact CBOR form.
func (s *OpenSystem[H, K, N]) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(openSystemBinarySchema{
		System: s.system.schema(),
		Noise:  s.noise.schema(),
		Meta:   schemaMeta{Version: SchemaVersion},
	})
}

// UnmarshalBinary decodes the compact CBOR form.
func (s *OpenSystem[H, K, N]) UnmarshalBinary(data []byte) error {
	var raw openSystemBinarySchema
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := checkVersion(raw.Meta.Version); err != nil {
		return err
	}
	system := NewHamiltonian[H, K]()
	if err := system.fromSchema(raw.System); err != nil {
		return err
	}
	noise := NewNoiseOperator[N]()
	if err := noise.fromSchema(raw.Noise); err != nil {
		return err
	}
	grouped, err := Group(system, noise)
	if err != nil {
		return err
	}
	*s = *grouped

	return nil
}

// --- Legacy import ----------------------------------------------------

// legacySchema is the retired v1 wire form: heterogeneous [key, re, im]
// triples under a British-spelled meta field.
type legacySchema struct {
	Items [][]json.RawMessage `json:"items"`
	Meta  schemaMeta          `json:"serialisation_meta"`
}

// ImportLegacyOperator converts a serialized v1-schema operator into the
// current schema key-by-key. Every legacy key must parse under the
// current canonical grammar; the conversion fails otherwise. This is a
// one-way migration: no v1 writer exists in this build.
func ImportLegacyOperator[K Key[K]](data []byte) (*Operator[K], error) {
	var s legacySchema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	major, err := parseMajor(s.Meta.Version)
	if err != nil {
		return nil, err
	}
	if major != 1 {
		return nil, fmt.Errorf("legacy import requires a 1.x form, got %q: %w",
			s.Meta.Version, ErrUnsupportedVersion)
	}

	out := NewOperator[K]()
	var zero K
	for i, item := range s.Items {
		if len(item) != 3 {
			return nil, fmt.Errorf("%w: item %d has %d elements, want 3", ErrInvalidSchema, i, len(item))
		}
		var keyText string
		if err = json.Unmarshal(item[0], &keyText); err != nil {
			return nil, fmt.Errorf("%w: item %d key: %v", ErrInvalidSchema, i, err)
		}
		var re, im float64
		if err = json.Unmarshal(item[1], &re); err != nil {
			return nil, fmt.Errorf("%w: item %d real part: %v", ErrInvalidSchema, i, err)
		}
		if err = json.Unmarshal(item[2], &im); err != nil {
			return nil, fmt.Errorf("%w: item %d imaginary part: %v", ErrInvalidSchema, i, err)
		}
		k, parseErr := zero.FromString(keyText)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: legacy key %q: %v", ErrInvalidSchema, keyText, parseErr)
		}
		if _, dup := out.terms[k.String()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, keyText)
		}
		if err = out.Set(k, coeff.FromParts(re, im)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
