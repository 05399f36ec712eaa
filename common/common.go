// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ParseBaseURI checks that uri is an absolute http(s) URL suitable as the
// root for API paths.
func ParseBaseURI(uri string) (*url.URL, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("malformed URI: %w", err)
	}

	if !u.IsAbs() {
		return nil, fmt.Errorf("URI is not absolute: %q", uri)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URI scheme %q", u.Scheme)
	}

	return u, nil
}

// Endpoint joins path elements onto base and sets the (already encoded)
// query. base is not modified.
func Endpoint(base *url.URL, query url.Values, elem ...string) string {
	u := base.JoinPath(elem...)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	return u.String()
}

// DecodeJSONBody decodes the response body into j and closes it.
func DecodeJSONBody(res *http.Response, j interface{}) error {
	defer res.Body.Close()

	if res.ContentLength == 0 {
		return errors.New("empty body")
	}

	return json.NewDecoder(res.Body).Decode(j)
}

// Envelope is the wrapper every Airalo response body comes in.
type Envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		Message string `json:"message"`
	} `json:"meta"`
}
