// SPDX-License-Identifier: MIT
// Package operators: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// operators package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for documented internal-invariant
// violations (partition re-insertion, see Separate).

package operators

import "errors"

var (
	// ErrBadCapacity indicates a negative declared capacity at construction.
	ErrBadCapacity = errors.New("operators: declared capacity must be non-negative")

	// ErrCapacityExceeded indicates a key referencing a site/mode at or
	// beyond the container's declared capacity.
	ErrCapacityExceeded = errors.New("operators: key exceeds declared capacity")

	// ErrCapacityMismatch indicates two containers declared over
	// incompatible system sizes were combined.
	ErrCapacityMismatch = errors.New("operators: incompatible declared capacities")

	// ErrComplexCoefficient indicates a non-real coefficient supplied for a
	// self-adjoint (natural hermitian) key of a Hamiltonian.
	ErrComplexCoefficient = errors.New("operators: complex coefficient on self-adjoint key")

	// ErrInvalidSchema indicates a structurally invalid serialized form:
	// malformed items, zero coefficients, or keys that fail to parse.
	ErrInvalidSchema = errors.New("operators: invalid serialized form")

	// ErrDuplicateKey indicates the same canonical key appeared twice in a
	// serialized form. Deserialization rejects this instead of merging.
	ErrDuplicateKey = errors.New("operators: duplicate key in serialized form")

	// ErrUnsupportedVersion indicates a serialized form carrying a schema
	// version this build cannot read.
	ErrUnsupportedVersion = errors.New("operators: unsupported schema version")
)
