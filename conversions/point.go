// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package conversions

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	bls "github.com/kilic/bls12-381"

	"github.com/arity-labs/zklogin/internal/limbs"
)

const (
	g1UncompressedSize = 2 * fp.Bytes
	g2UncompressedSize = 4 * fp.Bytes
)

// G1ToPairing converts an affine G1 point to the pairing backend's
// representation. The coordinates are bridged individually and laid out in
// the backend's uncompressed serialization, then the bytes are normalized by
// a round trip through the backend's own deserializer: assembling the value
// without it would skip the validity masks deserialization applies, leaving
// a point that is numerically correct but structurally nonconforming for
// downstream backend consumers.
//
// Inputs are always valid points produced internally, so a deserializer
// rejection means the bridge itself corrupted the point; that case panics
// instead of returning an error.
func G1ToPairing(p *bls12381.G1Affine) *bls.PointG1 {
	var raw [g1UncompressedSize]byte
	if p.IsInfinity() {
		raw[0] = maskInfinity
	} else {
		x := FpToPairing(&p.X)
		y := FpToPairing(&p.Y)
		limbs.BEBytesFromWords(raw[:fp.Bytes], x[:])
		limbs.BEBytesFromWords(raw[fp.Bytes:], y[:])
	}

	q, err := bls.NewG1().FromUncompressed(raw[:])
	if err != nil {
		panic(fmt.Sprintf("conversions: G1 bridge output rejected by the pairing backend deserializer: %v", err))
	}
	return q
}

// G1FromPairing converts a pairing backend G1 point to an affine
// gnark-crypto point. The backend's uncompressed serialization carries the
// infinity flag in bit 6 of byte 0; for finite points the coordinate bytes
// come from a valid point and are imported without on-curve validation.
func G1FromPairing(p *bls.PointG1) bls12381.G1Affine {
	out := bls.NewG1().ToUncompressed(p)

	var q bls12381.G1Affine
	if out[0]&maskInfinity != 0 {
		return q
	}
	q.X.SetBytes(out[:fp.Bytes])
	q.Y.SetBytes(out[fp.Bytes:])
	return q
}

// G2ToPairing converts an affine G2 point to the pairing backend's
// representation, with the same normalize round trip as G1ToPairing.
func G2ToPairing(p *bls12381.G2Affine) *bls.PointG2 {
	var raw [g2UncompressedSize]byte
	if p.IsInfinity() {
		raw[0] = maskInfinity
	} else {
		x := E2ToPairing(&p.X)
		y := E2ToPairing(&p.Y)
		// c1 precedes c0 within each coordinate on the wire
		limbs.BEBytesFromWords(raw[0:fp.Bytes], x[1][:])
		limbs.BEBytesFromWords(raw[fp.Bytes:2*fp.Bytes], x[0][:])
		limbs.BEBytesFromWords(raw[2*fp.Bytes:3*fp.Bytes], y[1][:])
		limbs.BEBytesFromWords(raw[3*fp.Bytes:], y[0][:])
	}

	q, err := bls.NewG2().FromUncompressed(raw[:])
	if err != nil {
		panic(fmt.Sprintf("conversions: G2 bridge output rejected by the pairing backend deserializer: %v", err))
	}
	return q
}

// G2FromPairing converts a pairing backend G2 point to an affine
// gnark-crypto point; see G1FromPairing.
func G2FromPairing(p *bls.PointG2) bls12381.G2Affine {
	out := bls.NewG2().ToUncompressed(p)

	var q bls12381.G2Affine
	if out[0]&maskInfinity != 0 {
		return q
	}
	q.X.A1.SetBytes(out[0:fp.Bytes])
	q.X.A0.SetBytes(out[fp.Bytes : 2*fp.Bytes])
	q.Y.A1.SetBytes(out[2*fp.Bytes : 3*fp.Bytes])
	q.Y.A0.SetBytes(out[3*fp.Bytes:])
	return q
}
