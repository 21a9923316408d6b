// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package conversions

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// Compressed point sizes in the Zcash encoding.
const (
	G1CompressedSize = fp.Bytes
	G2CompressedSize = 2 * fp.Bytes
)

var (
	// ErrInvalidEncoding is returned when a buffer has the wrong length or
	// does not carry the compression flag; only compressed encodings are
	// supported.
	ErrInvalidEncoding = errors.New("conversions: not a compressed point encoding")

	// ErrPointNotOnCurve is returned when the decoded x-coordinate has no
	// y-coordinate on the curve. Probing arbitrary bytes for curve
	// membership is legitimate, so this is an ordinary decode failure.
	ErrPointNotOnCurve = errors.New("conversions: x is not a curve point abscissa")
)

// curve coefficients of y^2 = x^3 + 4 and its twist y^2 = x^3 + 4(u+1)
var (
	bG1 fp.Element
	bG2 bls12381.E2
)

func init() {
	bG1.SetUint64(4)
	bG2.A0.SetUint64(4)
	bG2.A1.SetUint64(4)
}

// G1ToZcashBytes serializes an affine G1 point in the 48-byte compressed
// Zcash encoding: the big-endian x-coordinate with the compression, infinity
// and sign flags packed into the high bits of byte 0. The identity encodes
// as the infinity flag over an all-zero payload.
func G1ToZcashBytes(p *bls12381.G1Affine) [G1CompressedSize]byte {
	var out [G1CompressedSize]byte
	fp.BigEndian.PutElement(&out, p.X)

	flags := EncodingFlags{
		IsCompressed:               true,
		IsInfinity:                 p.IsInfinity(),
		IsLexicographicallyLargest: p.Y.LexicographicallyLargest(),
	}
	flags.Encode(out[:])
	return out
}

// G1FromZcashBytes deserializes an affine G1 point from the 48-byte
// compressed Zcash encoding. Uncompressed input is rejected; an infinity
// flag short-circuits to the identity without reading the payload; otherwise
// y is recovered from x and the sign bit. No subgroup check is performed.
func G1FromZcashBytes(in []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if len(in) != G1CompressedSize {
		return p, ErrInvalidEncoding
	}

	flags := ParseEncodingFlags(in)
	if !flags.IsCompressed {
		return p, ErrInvalidEncoding
	}
	if flags.IsInfinity {
		return p, nil
	}

	var buf [fp.Bytes]byte
	copy(buf[:], in)
	buf[0] &^= flagsMask
	x, err := fp.BigEndian.Element(&buf)
	if err != nil {
		return p, ErrNonCanonicalFieldElement
	}

	y, err := g1YFromX(&x, flags.IsLexicographicallyLargest)
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	return p, nil
}

// G2ToZcashBytes serializes an affine G2 point in the 96-byte compressed
// Zcash encoding. The x-coordinate's second tower component (c1) occupies
// the first 48 bytes and the first component (c0) the next 48; this ordering
// is the fixed wire convention.
func G2ToZcashBytes(p *bls12381.G2Affine) [G2CompressedSize]byte {
	var out [G2CompressedSize]byte
	var c [fp.Bytes]byte
	fp.BigEndian.PutElement(&c, p.X.A1)
	copy(out[:fp.Bytes], c[:])
	fp.BigEndian.PutElement(&c, p.X.A0)
	copy(out[fp.Bytes:], c[:])

	flags := EncodingFlags{
		IsCompressed:               true,
		IsInfinity:                 p.IsInfinity(),
		IsLexicographicallyLargest: p.Y.LexicographicallyLargest(),
	}
	flags.Encode(out[:])
	return out
}

// G2FromZcashBytes deserializes an affine G2 point from the 96-byte
// compressed Zcash encoding; see G1FromZcashBytes.
func G2FromZcashBytes(in []byte) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if len(in) != G2CompressedSize {
		return p, ErrInvalidEncoding
	}

	flags := ParseEncodingFlags(in)
	if !flags.IsCompressed {
		return p, ErrInvalidEncoding
	}
	if flags.IsInfinity {
		return p, nil
	}

	var buf [fp.Bytes]byte
	copy(buf[:], in[:fp.Bytes])
	buf[0] &^= flagsMask
	xc1, err := fp.BigEndian.Element(&buf)
	if err != nil {
		return p, ErrNonCanonicalFieldElement
	}
	copy(buf[:], in[fp.Bytes:])
	xc0, err := fp.BigEndian.Element(&buf)
	if err != nil {
		return p, ErrNonCanonicalFieldElement
	}

	x := bls12381.E2{A0: xc0, A1: xc1}
	y, err := g2YFromX(&x, flags.IsLexicographicallyLargest)
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	return p, nil
}

func g1YFromX(x *fp.Element, largest bool) (fp.Element, error) {
	var ySquared, y fp.Element
	ySquared.Square(x).Mul(&ySquared, x).Add(&ySquared, &bG1)
	if ySquared.Legendre() != 1 {
		return y, ErrPointNotOnCurve
	}
	y.Sqrt(&ySquared)
	if y.LexicographicallyLargest() != largest {
		y.Neg(&y)
	}
	return y, nil
}

func g2YFromX(x *bls12381.E2, largest bool) (bls12381.E2, error) {
	var ySquared, y bls12381.E2
	ySquared.Square(x).Mul(&ySquared, x).Add(&ySquared, &bG2)
	if ySquared.Legendre() != 1 {
		return y, ErrPointNotOnCurve
	}
	y.Sqrt(&ySquared)
	if y.LexicographicallyLargest() != largest {
		y.Neg(&y)
	}
	return y, nil
}
