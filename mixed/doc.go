// SPDX-License-Identifier: MIT

// Package mixed implements canonical products over composite systems
// that tensor spin, boson and fermion subsystems, plus their container
// instantiations.
//
// A MixedProduct fixes a number of subsystems per kind and carries one
// canonical factor per subsystem: PauliProduct for spins, BosonProduct
// for bosonic modes, FermionProduct for fermionic modes. Two mixed
// products only multiply when their subsystem counts per kind agree;
// the product expands as the cartesian combination of the per-subsystem
// term lists, with every subsystem phase folded into the coefficient.
//
// Text form: one colon-separated segment per subsystem in kind order,
// prefixed S, B or F ("S0X:S1Z:Bc0a0:Fc0a1"); identity subsystems
// render as "SI", "BI" or "FI", and the product with no subsystems at
// all renders as "I".
package mixed
