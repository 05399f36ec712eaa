// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/esimkit/apiclient/auth"
	"github.com/esimkit/apiclient/common"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the Airalo Partner API sandbox.
const DefaultBaseURL = "https://sandbox-partners-api.airalo.com"

// Client talks to the Airalo Partner API on behalf of one partner
// application.
type Client struct {
	// HTTP is the underlying client used for HTTP requests.
	HTTP *common.Client

	// BaseURI is the API root. Endpoint paths (/v2/...) are relative to it.
	BaseURI *url.URL

	creds auth.ClientCredentials

	mu    sync.RWMutex
	token *oauth2.Token
}

// New creates a Client for the given credentials. No request is made and the
// credentials are not checked; errors come only from misconfigured options.
func New(clientID, clientSecret string, opts ...Option) (*Client, error) {
	c := &Client{
		HTTP: common.NewClient(nil),
		creds: auth.ClientCredentials{
			ClientID:     clientID,
			ClientSecret: clientSecret,
		},
	}

	base, err := common.ParseBaseURI(DefaultBaseURL)
	if err != nil {
		return nil, err
	}
	c.BaseURI = base

	if common.DebugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Credentials returns the client credentials the Client was built with.
func (c *Client) Credentials() auth.ClientCredentials {
	return c.creds
}

// Token returns the last access token obtained by Authenticate or installed
// with SetToken, or "" if there is none.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == nil {
		return ""
	}
	return c.token.AccessToken
}

// SetToken replaces the cached access token. An empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == "" {
		c.token = nil
		return
	}
	c.token = &oauth2.Token{AccessToken: token}
}

// Authenticate requests a new access token with the client credentials and
// caches it. If the token endpoint answers with anything other than 200 OK,
// the returned token is "" and err is nil: callers must check for an empty
// token. A non-nil error means the exchange itself could not be carried out
// (transport failure, undecodable response).
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	tok, err := auth.ObtainToken(ctx, c.HTTP, c.endpoint(nil, "token"), c.creds)
	if err != nil {
		var herr *common.HTTPError
		if errors.As(err, &herr) {
			return "", nil
		}
		return "", err
	}

	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()

	return tok.AccessToken, nil
}

// resolveToken returns explicit if set, or a freshly obtained token.
func (c *Client) resolveToken(ctx context.Context, explicit string) (*oauth2.Token, error) {
	if explicit != "" {
		return &oauth2.Token{AccessToken: explicit}, nil
	}

	tok, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if tok == "" {
		return nil, ErrAuthenticationFailed
	}

	return &oauth2.Token{AccessToken: tok}, nil
}

func (c *Client) endpoint(query url.Values, elem ...string) string {
	return common.Endpoint(c.BaseURI, query, append([]string{"v2"}, elem...)...)
}
