// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// DebugEnvVar turns on request/response dumps when set to "true".
const DebugEnvVar = "ESIMKIT_DEBUG"

// DebugTransport logs every request and response at debug level. Dumps
// include the Authorization header and client secret, so it must not be
// enabled outside development.
type DebugTransport struct {
	Base http.RoundTripper
}

// NewDebugTransport wraps base (http.DefaultTransport if nil).
func NewDebugTransport(base http.RoundTripper) *DebugTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &DebugTransport{Base: base}
}

func (dt *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	res, err := dt.Base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if resDump, err := httputil.DumpResponse(res, true); err == nil {
		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", res.StatusCode).
			Str("response_dump", string(resDump)).
			Msg("HTTP response")
	}

	return res, nil
}

// DebugLoggingRequested reports whether DebugEnvVar is set to "true".
func DebugLoggingRequested() bool {
	return os.Getenv(DebugEnvVar) == "true"
}
