// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zklogin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/arity-labs/zklogin/logger"
)

type saltRequest struct {
	Token string `json:"token"`
}

type saltResponse struct {
	Salt string `json:"salt"`
}

// ProofPoints are the Groth16 proof points as decimal coordinate strings,
// exactly as the prover service emits them.
type ProofPoints struct {
	A []string   `json:"a"`
	B [][]string `json:"b"`
	C []string   `json:"c"`
}

// ClaimDetails locates a claim inside the base64 JWT payload.
type ClaimDetails struct {
	Value     string `json:"value"`
	IndexMod4 int    `json:"indexMod4"`
}

// ZkLoginProof is the prover service response: the proof points plus the
// inputs needed to assemble an authenticator.
type ZkLoginProof struct {
	ProofPoints      ProofPoints  `json:"proofPoints"`
	IssBase64Details ClaimDetails `json:"issBase64Details"`
	HeaderBase64     string       `json:"headerBase64"`
	AddressSeed      string       `json:"addressSeed"`
}

type proofRequest struct {
	JWT                        string `json:"jwt"`
	ExtendedEphemeralPublicKey string `json:"extendedEphemeralPublicKey"`
	MaxEpoch                   uint64 `json:"maxEpoch"`
	JWTRandomness              string `json:"jwtRandomness"`
	Salt                       string `json:"salt"`
	KeyClaimName               string `json:"keyClaimName"`
}

// GetSalt asks the salt service for the user salt bound to a JWT. The salt
// is returned as a decimal string. A nil client falls back to
// http.DefaultClient.
func GetSalt(ctx context.Context, client *http.Client, saltURL, jwtToken string) (string, error) {
	var out saltResponse
	if err := postJSON(ctx, client, saltURL, saltRequest{Token: jwtToken}, &out); err != nil {
		return "", fmt.Errorf("salt service: %w", err)
	}
	return out.Salt, nil
}

// GetProof asks the prover service for the zkLogin proof over a JWT,
// ephemeral key, epoch bound, randomness and salt. The key claim is "sub".
func GetProof(ctx context.Context, client *http.Client, proverURL, jwtToken string, maxEpoch uint64, jwtRandomness, ephPubkey, salt string) (*ZkLoginProof, error) {
	req := proofRequest{
		JWT:                        jwtToken,
		ExtendedEphemeralPublicKey: ephPubkey,
		MaxEpoch:                   maxEpoch,
		JWTRandomness:              jwtRandomness,
		Salt:                       salt,
		KeyClaimName:               "sub",
	}
	var out ZkLoginProof
	if err := postJSON(ctx, client, proverURL, req, &out); err != nil {
		return nil, fmt.Errorf("prover service: %w", err)
	}
	return &out, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, in, out any) error {
	log := logger.Logger().With().Str("component", "zklogin").Logger()

	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("request rejected")
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	log.Debug().Str("url", url).Msg("request served")
	return nil
}
