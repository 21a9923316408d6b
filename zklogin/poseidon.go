// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zklogin

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

// maxPoseidonInputs is the arity bound of the circomlib Poseidon instance
// the zkLogin circuit uses.
const maxPoseidonInputs = 16

// poseidonHash hashes field elements with the zkLogin Poseidon instance.
// It fails on an empty input or on more than maxPoseidonInputs elements.
func poseidonHash(inputs []fr.Element) (fr.Element, error) {
	var out fr.Element
	if len(inputs) == 0 || len(inputs) > maxPoseidonInputs {
		return out, fmt.Errorf("zklogin: poseidon input count must be in [1, %d], got %d", maxPoseidonInputs, len(inputs))
	}

	elems := make([]*big.Int, len(inputs))
	for i := range inputs {
		elems[i] = inputs[i].BigInt(new(big.Int))
	}
	h, err := poseidon.Hash(elems)
	if err != nil {
		return out, fmt.Errorf("zklogin: poseidon: %w", err)
	}
	out.SetBigInt(h)
	return out, nil
}
