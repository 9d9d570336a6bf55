// SPDX-License-Identifier: MIT

// Package mappings translates operators between particle kinds.
//
// Jordan-Wigner maps fermionic ladder operators onto spin-1/2 chains
// and back, exactly and term-by-term: a creator on mode p becomes the
// Z-string on sites below p times (X_p - iY_p)/2, and each Pauli axis
// has a closed fermionic image in return. The mapping preserves the
// container type table: operators map to operators, hamiltonians to
// hamiltonians, noise to noise and open systems to open systems, with
// dissipator pairs mapped bilinearly.
//
// The boson-spin (Dicke) mapping approximates each bosonic mode by N
// spin replicas: occupation b†b becomes the replica sum of (I+Z)/2 and
// the displacement b+b† becomes the replica sum of X scaled by 1/√N.
// Only those term shapes have images; anything else reports
// ErrUnsupportedTermShape.
package mappings
