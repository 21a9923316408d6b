// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package zklogin derives the values a zkLogin authenticator is built from:
// the address seed bound to a user's OIDC claims and salt, the on-chain
// address, and the nonce a JWT must commit to. It also builds provider
// authorize/token-exchange URLs and talks to the salt and prover services.
//
// Field arithmetic here is over the BN254 scalar field (the zkLogin
// circuit's field), with Poseidon consumed as an opaque primitive.
package zklogin
