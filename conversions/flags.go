// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package conversions

// Flag bits carried in the three high bits of byte 0 of a point encoding.
const (
	maskCompressed = 1 << 7
	maskInfinity   = 1 << 6
	maskLexLargest = 1 << 5

	flagsMask = maskCompressed | maskInfinity | maskLexLargest
)

// EncodingFlags are the three flag bits of a point encoding: whether the
// encoding is compressed, whether it is the point at infinity, and whether
// the y-coordinate is the lexicographically largest of the two square roots.
// The sign bit is defined only for compressed finite points.
type EncodingFlags struct {
	IsCompressed               bool
	IsInfinity                 bool
	IsLexicographicallyLargest bool
}

// ParseEncodingFlags reads the flag bits from in[0].
func ParseEncodingFlags(in []byte) EncodingFlags {
	return EncodingFlags{
		IsCompressed:               in[0]&maskCompressed != 0,
		IsInfinity:                 in[0]&maskInfinity != 0,
		IsLexicographicallyLargest: in[0]&maskLexLargest != 0,
	}
}

// Encode sets the flag bits in out[0], leaving the low five bits and the
// rest of the buffer untouched; the caller supplies the coordinate payload.
// The sign bit is meaningless for infinity or uncompressed encodings and is
// never set for them.
func (f *EncodingFlags) Encode(out []byte) {
	if f.IsCompressed {
		out[0] |= maskCompressed
	}
	if f.IsInfinity {
		out[0] |= maskInfinity
	}
	if f.IsCompressed && !f.IsInfinity && f.IsLexicographicallyLargest {
		out[0] |= maskLexLargest
	}
}
