// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package conversions

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bls "github.com/kilic/bls12-381"

	"github.com/arity-labs/zklogin/internal/limbs"
)

// FrToPairing converts a scalar field element to the pairing backend's
// representation: the canonical value is serialized to a 32-byte
// little-endian buffer and repacked as four 64-bit words.
func FrToPairing(e *fr.Element) bls.Fr {
	var buf [fr.Bytes]byte
	fr.LittleEndian.PutElement(&buf, *e)

	var out bls.Fr
	limbs.WordsFromLEBytes(out[:], buf[:])
	return out
}

// FrFromPairing converts a pairing backend scalar back to a gnark-crypto
// element. The words are read as a 256-bit little-endian integer and reduced
// modulo the group order, so any word pattern maps to a valid residue; this
// direction never fails. Note the asymmetry with FpFromPairing, which
// rejects out-of-range input instead of reducing.
func FrFromPairing(e *bls.Fr) fr.Element {
	var buf [fr.Bytes]byte
	limbs.BEBytesFromWords(buf[:], e[:])

	var out fr.Element
	out.SetBytes(buf[:])
	return out
}
