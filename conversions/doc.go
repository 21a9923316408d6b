// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package conversions translates BLS12-381 field elements and curve points
// between the two in-memory representations used around zkLogin proof
// verification, and (de)serializes affine points in the standard compressed
// byte format.
//
// Two libraries hold the same algebra in different layouts: gnark-crypto
// (github.com/consensys/gnark-crypto/ecc/bls12-381), used for verification
// and general arithmetic, stores field elements as Montgomery-form limbs;
// the pairing backend (github.com/kilic/bls12-381) works on plain-form
// little-endian 64-bit words. The two families of types are kept distinct on
// purpose: consumers of each library expect its exact memory layout, so the
// bridge never unifies them, it only converts. All conversions are pure and
// allocate fresh outputs.
//
// Point encoding follows the convention of section 5.4.9.2 of the Zcash
// protocol specification (https://zips.z.cash/protocol/protocol.pdf), also
// the serialization of draft-irtf-cfrg-bls-signature: 48-byte compressed G1,
// 96-byte compressed G2, with the compression, infinity and sign flags in
// the three high bits of the first byte. The pairing backend speaks this
// format natively; gnark-crypto's bls12-381 marshaling follows it as well.
// Only the compressed form is accepted here, and decoding performs no
// subgroup check: callers verifying proofs are expected to validate subgroup
// membership themselves.
package conversions
