// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package conversions

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Tower field elements in the pairing backend's limb layout. The component
// order matches the algebraic tower: index 0 is c0.
type (
	// Fe2 is c0 + c1*u over the base field.
	Fe2 [2]Fe
	// Fe6 is a cubic extension over Fe2.
	Fe6 [3]Fe2
	// Fe12 is a quadratic extension over Fe6, the pairing target field.
	Fe12 [2]Fe6
)

// E2ToPairing converts a quadratic extension element coordinate-wise.
func E2ToPairing(e *bls12381.E2) Fe2 {
	return Fe2{FpToPairing(&e.A0), FpToPairing(&e.A1)}
}

// E2FromPairing converts a quadratic extension element coordinate-wise,
// propagating any base field import failure.
func E2FromPairing(e *Fe2) (bls12381.E2, error) {
	var out bls12381.E2
	var err error
	if out.A0, err = FpFromPairing(&e[0]); err != nil {
		return bls12381.E2{}, err
	}
	if out.A1, err = FpFromPairing(&e[1]); err != nil {
		return bls12381.E2{}, err
	}
	return out, nil
}

// E6ToPairing converts a sextic extension element coordinate-wise.
func E6ToPairing(e *bls12381.E6) Fe6 {
	return Fe6{E2ToPairing(&e.B0), E2ToPairing(&e.B1), E2ToPairing(&e.B2)}
}

// E6FromPairing converts a sextic extension element coordinate-wise.
func E6FromPairing(e *Fe6) (bls12381.E6, error) {
	var out bls12381.E6
	var err error
	if out.B0, err = E2FromPairing(&e[0]); err != nil {
		return bls12381.E6{}, err
	}
	if out.B1, err = E2FromPairing(&e[1]); err != nil {
		return bls12381.E6{}, err
	}
	if out.B2, err = E2FromPairing(&e[2]); err != nil {
		return bls12381.E6{}, err
	}
	return out, nil
}

// E12ToPairing converts a target field element coordinate-wise.
func E12ToPairing(e *bls12381.E12) Fe12 {
	return Fe12{E6ToPairing(&e.C0), E6ToPairing(&e.C1)}
}

// E12FromPairing converts a target field element coordinate-wise.
func E12FromPairing(e *Fe12) (bls12381.E12, error) {
	var out bls12381.E12
	var err error
	if out.C0, err = E6FromPairing(&e[0]); err != nil {
		return bls12381.E12{}, err
	}
	if out.C1, err = E6FromPairing(&e[1]); err != nil {
		return bls12381.E12{}, err
	}
	return out, nil
}
