// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zklogin

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var errNotDecimal = errors.New("zklogin: value is not an unsigned decimal string")

// parseFrDecimal parses a non-empty base-10 unsigned integer string into a
// BN254 scalar, reduced modulo the field order. Salts and address seeds
// travel as decimal strings everywhere in the zkLogin protocol.
func parseFrDecimal(s string) (fr.Element, error) {
	var e fr.Element
	if s == "" {
		return e, errNotDecimal
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return e, errNotDecimal
	}
	e.SetBigInt(n)
	return e, nil
}
