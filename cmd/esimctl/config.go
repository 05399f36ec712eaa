// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/esimkit/apiclient"
	"github.com/esimkit/apiclient/auth"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment, after an optional .env in the working
// directory has been loaded into it.
type Config struct {
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	BaseURL      string `envconfig:"AIRALO_BASE_URL" default:"https://sandbox-partners-api.airalo.com"`
}

func loadConfig() (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = apiclient.DefaultBaseURL
	}

	return cfg, nil
}

// readCredentials reads client_id and client_secret from a dotenv-formatted
// file. Key case is ignored, so a copy of .env works as is.
func readCredentials(path string) (auth.ClientCredentials, error) {
	var creds auth.ClientCredentials

	kv, err := godotenv.Read(path)
	if err != nil {
		return creds, fmt.Errorf("reading credentials: %w", err)
	}

	m := make(map[string]interface{}, len(kv))
	for k, v := range kv {
		m[strings.ToLower(k)] = v
	}

	if err := creds.Configure(m); err != nil {
		return creds, fmt.Errorf("%s: %w", path, err)
	}

	return creds, nil
}
