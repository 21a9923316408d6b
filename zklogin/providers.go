// Copyright 2023-2025 Arity Labs
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zklogin

import (
	"errors"
	"fmt"
)

type providerKind int

const (
	providerGoogle providerKind = iota
	providerTwitch
	providerFacebook
	providerKakao
	providerApple
	providerSlack
	providerMicrosoft
	providerKarrierOne
	providerCredenza3
	providerOnefc
	providerAwsTenant
)

// OIDCProvider identifies a supported OpenID Connect provider. AWS Cognito
// tenants are parameterized; use AwsTenant to construct one.
type OIDCProvider struct {
	kind providerKind

	// Cognito parameters, set only for providerAwsTenant.
	region   string
	tenantID string
}

var (
	Google     = OIDCProvider{kind: providerGoogle}
	Twitch     = OIDCProvider{kind: providerTwitch}
	Facebook   = OIDCProvider{kind: providerFacebook}
	Kakao      = OIDCProvider{kind: providerKakao}
	Apple      = OIDCProvider{kind: providerApple}
	Slack      = OIDCProvider{kind: providerSlack}
	Microsoft  = OIDCProvider{kind: providerMicrosoft}
	KarrierOne = OIDCProvider{kind: providerKarrierOne}
	Credenza3  = OIDCProvider{kind: providerCredenza3}
	Onefc      = OIDCProvider{kind: providerOnefc}
)

// AwsTenant returns the provider for an AWS Cognito tenant in a region.
func AwsTenant(region, tenantID string) OIDCProvider {
	return OIDCProvider{kind: providerAwsTenant, region: region, tenantID: tenantID}
}

// ErrUnsupportedProvider is returned when a provider has no URL of the
// requested kind.
var ErrUnsupportedProvider = errors.New("zklogin: unsupported OIDC provider")

// GetOIDCURL returns the provider's authorize URL for an id_token (or code)
// flow; crucially, the nonce is computed from the ephemeral key, epoch and
// randomness so the resulting JWT commits to them.
func GetOIDCURL(provider OIDCProvider, ephPk []byte, maxEpoch uint64, clientID, redirectURL, jwtRandomness string) (string, error) {
	nonce, err := GetNonce(ephPk, maxEpoch, jwtRandomness)
	if err != nil {
		return "", err
	}

	switch provider.kind {
	case providerGoogle:
		return fmt.Sprintf("https://accounts.google.com/o/oauth2/v2/auth?client_id=%s&response_type=id_token&redirect_uri=%s&scope=openid&nonce=%s", clientID, redirectURL, nonce), nil
	case providerTwitch:
		return fmt.Sprintf("https://id.twitch.tv/oauth2/authorize?client_id=%s&force_verify=true&lang=en&login_type=login&redirect_uri=%s&response_type=id_token&scope=openid&nonce=%s", clientID, redirectURL, nonce), nil
	case providerFacebook:
		return fmt.Sprintf("https://www.facebook.com/v17.0/dialog/oauth?client_id=%s&redirect_uri=%s&scope=openid&nonce=%s&response_type=id_token", clientID, redirectURL, nonce), nil
	case providerKakao:
		return fmt.Sprintf("https://kauth.kakao.com/oauth/authorize?response_type=code&client_id=%s&redirect_uri=%s&nonce=%s", clientID, redirectURL, nonce), nil
	case providerApple:
		return fmt.Sprintf("https://appleid.apple.com/auth/authorize?client_id=%s&redirect_uri=%s&scope=email&response_mode=form_post&response_type=code%%20id_token&nonce=%s", clientID, redirectURL, nonce), nil
	case providerSlack:
		return fmt.Sprintf("https://slack.com/openid/connect/authorize?response_type=code&client_id=%s&redirect_uri=%s&nonce=%s&scope=openid", clientID, redirectURL, nonce), nil
	case providerMicrosoft:
		return fmt.Sprintf("https://login.microsoftonline.com/common/oauth2/v2.0/authorize?client_id=%s&scope=openid&response_type=id_token&redirect_uri=%s&nonce=%s", clientID, redirectURL, nonce), nil
	case providerKarrierOne:
		return fmt.Sprintf("https://accounts.karrier.one/Account/PhoneLogin?ReturnUrl=/connect/authorize?nonce=%s&redirect_uri=%s&response_type=id_token&scope=openid&client_id=%s", nonce, redirectURL, clientID), nil
	case providerCredenza3:
		return fmt.Sprintf("https://accounts.credenza3.com/oauth2/authorize?client_id=%s&response_type=token&scope=openid+profile+email+phone&redirect_uri=%s&nonce=%s&state=state", clientID, redirectURL, nonce), nil
	case providerOnefc:
		return fmt.Sprintf("https://login.onepassport.onefc.com/de3ee5c1-5644-4113-922d-e8336569a462/b2c_1a_prod_signupsignin_onesuizklogin/oauth2/v2.0/authorize?client_id=%s&scope=openid&response_type=id_token&redirect_uri=%s&nonce=%s", clientID, redirectURL, nonce), nil
	case providerAwsTenant:
		return fmt.Sprintf("https://%s.auth.%s.amazoncognito.com/login?response_type=token&client_id=%s&redirect_uri=%s&nonce=%s", provider.tenantID, provider.region, clientID, redirectURL, nonce), nil
	default:
		return "", ErrUnsupportedProvider
	}
}

// GetTokenExchangeURL returns the token exchange URL for providers using an
// auth-code flow. redirectURL is unused by Slack and clientSecret by Kakao;
// pass empty strings there.
func GetTokenExchangeURL(provider OIDCProvider, clientID, redirectURL, authCode, clientSecret string) (string, error) {
	switch provider.kind {
	case providerKakao:
		return fmt.Sprintf("https://kauth.kakao.com/oauth/token?grant_type=authorization_code&client_id=%s&redirect_uri=%s&code=%s", clientID, redirectURL, authCode), nil
	case providerSlack:
		return fmt.Sprintf("https://slack.com/api/openid.connect.token?code=%s&client_id=%s&client_secret=%s", authCode, clientID, clientSecret), nil
	default:
		return "", ErrUnsupportedProvider
	}
}
