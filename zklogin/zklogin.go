// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zklogin

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// zkLoginAuthenticatorFlag is the scheme byte prepended when hashing an
// authenticator into an address.
const zkLoginAuthenticatorFlag = 0x05

// Claim length caps enforced by the zkLogin circuit.
const (
	maxKeyClaimNameLength  = 32
	maxKeyClaimValueLength = 115
	maxAudValueLength      = 145
)

// packWidth is the bit width of the chunks ASCII claims are packed into
// before hashing; it must stay below the field's bit size.
const packWidth = 248

// AddressLength is the byte length of a zkLogin address.
const AddressLength = 32

// GenAddressSeed derives the address seed for a JWT claim and user salt:
// Poseidon over the hashed claim name, claim value and audience, plus the
// Poseidon hash of the salt. All scalar inputs and the result travel as
// decimal strings.
func GenAddressSeed(salt, name, value, aud string) (string, error) {
	saltElem, err := parseFrDecimal(salt)
	if err != nil {
		return "", fmt.Errorf("parse salt: %w", err)
	}
	saltHash, err := poseidonHash([]fr.Element{saltElem})
	if err != nil {
		return "", err
	}
	return genAddressSeedWithSaltHash(&saltHash, name, value, aud)
}

func genAddressSeedWithSaltHash(saltHash *fr.Element, name, value, aud string) (string, error) {
	nameElem, err := hashASCIIStrToField(name, maxKeyClaimNameLength)
	if err != nil {
		return "", err
	}
	valueElem, err := hashASCIIStrToField(value, maxKeyClaimValueLength)
	if err != nil {
		return "", err
	}
	audElem, err := hashASCIIStrToField(aud, maxAudValueLength)
	if err != nil {
		return "", err
	}

	seed, err := poseidonHash([]fr.Element{nameElem, valueElem, audElem, *saltHash})
	if err != nil {
		return "", err
	}
	return seed.String(), nil
}

// GetZkLoginAddress computes the address bound to an address seed and
// issuer: Blake2b-256 over the authenticator flag, the length-prefixed
// issuer string and the 32-byte big-endian address seed.
func GetZkLoginAddress(addressSeed, iss string) ([AddressLength]byte, error) {
	var addr [AddressLength]byte

	seed, err := parseFrDecimal(addressSeed)
	if err != nil {
		return addr, fmt.Errorf("parse address seed: %w", err)
	}
	if len(iss) > 255 {
		return addr, errors.New("zklogin: issuer string does not fit its length prefix")
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return addr, err
	}
	h.Write([]byte{zkLoginAuthenticatorFlag})
	h.Write([]byte{byte(len(iss))})
	h.Write([]byte(iss))
	seedBytes := seed.Bytes()
	h.Write(seedBytes[:])

	copy(addr[:], h.Sum(nil))
	return addr, nil
}

// GetNonce computes the nonce for an OIDC flow: the unpadded base64url
// encoding of the low 20 bytes of Poseidon over the split ephemeral public
// key, the max epoch and the JWT randomness.
func GetNonce(ephPk []byte, maxEpoch uint64, jwtRandomness string) (string, error) {
	first, second, err := SplitToTwoFrs(ephPk)
	if err != nil {
		return "", err
	}

	var epoch fr.Element
	epoch.SetUint64(maxEpoch)
	randomness, err := parseFrDecimal(jwtRandomness)
	if err != nil {
		return "", fmt.Errorf("parse jwt randomness: %w", err)
	}

	digest, err := poseidonHash([]fr.Element{first, second, epoch, randomness})
	if err != nil {
		return "", err
	}
	data := digest.Bytes()
	return base64.RawURLEncoding.EncodeToString(data[len(data)-20:]), nil
}

// SplitToTwoFrs splits ephemeral public key bytes (scheme flag followed by
// the key) into two scalars at the 128-bit boundary: the first element
// carries everything but the last 16 bytes, the second the last 16.
func SplitToTwoFrs(ephPk []byte) (fr.Element, fr.Element, error) {
	var first, second fr.Element
	if len(ephPk) <= 16 {
		return first, second, errors.New("zklogin: ephemeral public key too short to split")
	}
	first.SetBytes(ephPk[:len(ephPk)-16])
	second.SetBytes(ephPk[len(ephPk)-16:])
	return first, second, nil
}

// hashASCIIStrToField hashes an ASCII string into a field element the way
// the zkLogin circuit does: the bytes are zero-padded to maxLen, packed into
// big-endian packWidth-bit chunks, and hashed with Poseidon.
func hashASCIIStrToField(s string, maxLen int) (fr.Element, error) {
	var out fr.Element
	if len(s) > maxLen {
		return out, fmt.Errorf("zklogin: string of %d bytes exceeds the %d byte claim bound", len(s), maxLen)
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return out, fmt.Errorf("zklogin: claim string is not ASCII")
		}
	}

	padded := make([]byte, maxLen)
	copy(padded, s)
	return poseidonHash(packBytesToFields(padded))
}

// packBytesToFields splits the big-endian integer formed by bytes into
// packWidth-bit limbs, most significant limb first. The first limb carries
// the remainder bits, mirroring a right-aligned chunking.
func packBytesToFields(bytes []byte) []fr.Element {
	n := new(big.Int).SetBytes(bytes)
	mask := new(big.Int).Lsh(big.NewInt(1), packWidth)
	mask.Sub(mask, big.NewInt(1))

	nbChunks := (len(bytes)*8 + packWidth - 1) / packWidth
	out := make([]fr.Element, nbChunks)
	chunk := new(big.Int)
	for i := 0; i < nbChunks; i++ {
		chunk.Rsh(n, uint(packWidth*(nbChunks-1-i)))
		chunk.And(chunk, mask)
		out[i].SetBigInt(chunk)
	}
	return out
}
