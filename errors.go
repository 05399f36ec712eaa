// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"errors"

	"github.com/esimkit/apiclient/common"
)

var (
	// ErrInvalidArgument is returned, wrapped, for requests rejected before
	// anything is sent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthenticationFailed is returned when a call needed a token and the
	// token endpoint did not provide one.
	ErrAuthenticationFailed = errors.New("access token not generated")
)

// HTTPError is the error returned for unexpected response codes.
type HTTPError = common.HTTPError

// IsHTTPError reports whether err carries an HTTPError and returns it.
func IsHTTPError(err error) (*HTTPError, bool) {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr, true
	}
	return nil, false
}
