// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package limbs converts between fixed-size byte buffers and arrays of
// 64-bit words in the endian conventions the two curve libraries expect.
//
// It is the only place in the module that reinterprets big-integer layouts;
// every function checks that the byte buffer is exactly eight times the word
// count and panics otherwise, since a length mismatch means a caller has the
// wrong fixed-size layout and any output would be silently corrupt.
package limbs

import "encoding/binary"

func assertLen(words []uint64, bytes []byte) {
	if len(bytes) != 8*len(words) {
		panic("limbs: byte buffer length does not match word count")
	}
}

// WordsFromLEBytes fills dst with 64-bit words read from a little-endian
// byte buffer: dst[0] holds the least significant word.
func WordsFromLEBytes(dst []uint64, src []byte) {
	assertLen(dst, src)
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
}

// LEBytesFromWords writes the little-endian byte form of the value whose
// little-endian words are src.
func LEBytesFromWords(dst []byte, src []uint64) {
	assertLen(src, dst)
	for i := range src {
		binary.LittleEndian.PutUint64(dst[8*i:], src[i])
	}
}

// BEBytesFromWords writes the big-endian byte form of the value whose
// little-endian words are src: word order is reversed and each word is
// written big-endian.
func BEBytesFromWords(dst []byte, src []uint64) {
	assertLen(src, dst)
	n := len(src)
	for i := range src {
		binary.BigEndian.PutUint64(dst[8*i:], src[n-1-i])
	}
}
