// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ClientCredentials are the partner application's OAuth2 client credentials.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// Configure populates the credentials from cfg, which must contain
// "client_id" and "client_secret" and nothing else.
func (o *ClientCredentials) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		ClientID     string                 `mapstructure:"client_id"`
		ClientSecret string                 `mapstructure:"client_secret"`
		Rest         map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.ClientID = decoded.ClientID
	o.ClientSecret = decoded.ClientSecret

	if err := o.Validate(); err != nil {
		return err
	}

	if len(decoded.Rest) > 0 {
		var unexpected []string
		for k := range decoded.Rest {
			unexpected = append(unexpected, k)
		}
		sort.Strings(unexpected)
		return fmt.Errorf("unexpected fields in config: %s",
			strings.Join(unexpected, ", "))
	}

	return nil
}

// Validate checks that both halves of the credentials are present.
func (o ClientCredentials) Validate() error {
	if o.ClientID == "" {
		return errors.New("missing client_id")
	}

	if o.ClientSecret == "" {
		return errors.New("missing client_secret")
	}

	return nil
}
