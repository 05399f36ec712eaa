// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const JSONMediaType = "application/json"

// Client holds configuration data associated with the HTTP(s) session
type Client struct {
	HTTPClient http.Client
}

// NewClient instantiates a new Client. A nil transport selects
// http.DefaultTransport.
func NewClient(transport http.RoundTripper) *Client {
	return &Client{
		HTTPClient: http.Client{
			Transport: transport,
			Timeout:   5 * time.Second,
		},
	}
}

// PostResource POSTs body to uri. If tok is not nil, its access token is
// attached as the Authorization header.
func (c *Client) PostResource(
	ctx context.Context,
	body []byte,
	ct, accept, uri string,
	tok *oauth2.Token,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("POST %q, request creation failed: %w", uri, err)
	}

	req.Header.Set("Content-Type", ct)

	return c.do(req, accept, tok)
}

// GetResource GETs uri, optionally authenticated with tok.
func (c *Client) GetResource(
	ctx context.Context,
	accept, uri string,
	tok *oauth2.Token,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("GET %q, request creation failed: %w", uri, err)
	}

	return c.do(req, accept, tok)
}

func (c *Client) do(req *http.Request, accept string, tok *oauth2.Token) (*http.Response, error) {
	req.Header.Set("Accept", accept)

	if tok != nil {
		tok.SetAuthHeader(req)
	}

	hc := &c.HTTPClient

	res, err := hc.Do(req)
	if err != nil {
		countRequest(req, nil)
		return nil, err
	}

	countRequest(req, res)

	return res, nil
}

// DrainAndClose discards whatever is left of the response body so the
// connection can be reused.
func DrainAndClose(res *http.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}
