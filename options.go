// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"errors"

	"github.com/esimkit/apiclient/common"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithBaseURL points the Client at another API root, e.g. production
// (https://partners-api.airalo.com) or a local mock.
func WithBaseURL(uri string) Option {
	return func(c *Client) error {
		u, err := common.ParseBaseURI(uri)
		if err != nil {
			return err
		}
		c.BaseURI = u
		return nil
	}
}

// WithHTTPClient sets the HTTP(s) client connection configuration
func WithHTTPClient(client *common.Client) Option {
	return func(c *Client) error {
		if client == nil {
			return errors.New("no client supplied")
		}
		c.HTTP = client
		return nil
	}
}

// WithDebugLogging wraps the transport so that each request and response is
// logged at debug level when enabled is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.HTTP.HTTPClient.Transport.(*common.DebugTransport); ok {
			return nil
		}
		c.HTTP.HTTPClient.Transport = common.NewDebugTransport(c.HTTP.HTTPClient.Transport)
		return nil
	}
}
