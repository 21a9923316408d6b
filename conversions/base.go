// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package conversions

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"github.com/arity-labs/zklogin/internal/limbs"
)

// ErrNonCanonicalFieldElement is returned when a base field import reads a
// byte or word pattern that is not below the field modulus. The base field
// rejects such input rather than reducing it; see FrFromPairing for the
// scalar field's opposite policy.
var ErrNonCanonicalFieldElement = errors.New("conversions: value is not a canonical base field element")

// Fe is a base field element in the pairing backend's raw limb layout: six
// 64-bit little-endian words holding the plain (non-Montgomery) residue.
// The backend does not export its own element type, so this is the form its
// byte codecs consume at the bridge boundary.
type Fe [6]uint64

// FpToPairing converts a base field element to the pairing backend's limb
// layout, going through the element's 48-byte little-endian serialization:
// the two libraries disagree on canonical low-level layout for this field,
// so the byte form is the interchange format.
func FpToPairing(e *fp.Element) Fe {
	var buf [fp.Bytes]byte
	fp.LittleEndian.PutElement(&buf, *e)

	var out Fe
	limbs.WordsFromLEBytes(out[:], buf[:])
	return out
}

// FpFromPairing converts pairing backend limbs back to a gnark-crypto
// element. Words at or above the field modulus are rejected with
// ErrNonCanonicalFieldElement, never silently reduced.
func FpFromPairing(e *Fe) (fp.Element, error) {
	var buf [fp.Bytes]byte
	limbs.LEBytesFromWords(buf[:], e[:])

	el, err := fp.LittleEndian.Element(&buf)
	if err != nil {
		return fp.Element{}, ErrNonCanonicalFieldElement
	}
	return el, nil
}
