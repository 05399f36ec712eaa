// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

/*
Package apiclient is a client for the Airalo Partner API: access token
acquisition, eSIM order submission and retrieval of the eSIMs of an order.

The user creates a Client with the partner application's credentials. The
sandbox is used unless another base URL is supplied:

	c, err := apiclient.New(clientID, clientSecret,
		apiclient.WithBaseURL("https://partners-api.airalo.com"))

The user can also supply a custom common.Client, for example to configure the
underlying TLS transport:

	tr, err := auth.NewTLSTransport([]string{"proxy-ca.pem"})
	...
	c, err := apiclient.New(id, secret, apiclient.WithHTTPClient(common.NewClient(tr)))

Authentication

Authenticate obtains a token and caches it on the Client. A rejected request
is not an error: the token comes back empty and it is up to the caller to
check it.

	token, err := c.Authenticate(ctx)
	if err == nil && token == "" {
		// bad credentials
	}

Orders

SubmitOrder and ListEsims take an explicit token. When it is empty a new one
is obtained first, and ErrAuthenticationFailed is returned if none is issued.

	res, err := c.SubmitOrder(ctx, apiclient.OrderRequest{
		PackageID: "merhaba-7days-1gb",
		Quantity:  6,
	}, token)

	sims, err := c.ListEsims(ctx, res.OrderID, token)

ListEsims only returns the eSIMs of the given order. Quantities outside 1..50
fail with ErrInvalidArgument without contacting the API; unexpected response
codes are reported as *HTTPError.

Setting ESIMKIT_DEBUG=true logs every request and response through zerolog.
*/
package apiclient
