// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/esimkit/apiclient/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const GrantTypeClientCredentials = "client_credentials"

// TokenRequest is the body of POST /v2/token. The endpoint takes JSON rather
// than the form encoding of RFC 6749, which is why the exchange is not left to
// oauth2.Config.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// TokenData is the "data" member of a successful token response.
type TokenData struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

// ObtainToken exchanges creds for an access token at tokenURI. A non-200
// response yields a *common.HTTPError.
func ObtainToken(
	ctx context.Context,
	client *common.Client,
	tokenURI string,
	creds ClientCredentials,
) (*oauth2.Token, error) {
	body, err := json.Marshal(TokenRequest{
		GrantType:    GrantTypeClientCredentials,
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding token request: %w", err)
	}

	res, err := client.PostResource(ctx, body, common.JSONMediaType, common.JSONMediaType, tokenURI, nil)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var env common.Envelope
	if err := common.DecodeJSONBody(res, &env); err != nil {
		return nil, fmt.Errorf("failure decoding token response: %w", err)
	}

	var td TokenData
	if err := json.Unmarshal(env.Data, &td); err != nil {
		return nil, fmt.Errorf("failure decoding token data: %w", err)
	}

	return td.Token()
}

// Token converts the response data into an oauth2.Token. Expiry is filled in
// for the caller's information only.
func (o TokenData) Token() (*oauth2.Token, error) {
	if o.AccessToken == "" {
		return nil, errors.New("no access_token in token response")
	}

	tok := &oauth2.Token{
		AccessToken: o.AccessToken,
		TokenType:   o.TokenType,
	}

	if o.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(o.ExpiresIn) * time.Second)
	}

	log.Debug().
		Str("token_type", tok.Type()).
		Time("expiry", tok.Expiry).
		Msg("obtained access token")

	return tok, nil
}
