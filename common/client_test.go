// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const testURI = "http://airalo.example/v2/orders"

func TestClient_PostResource(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/orders", r.URL.Path)
		assert.Equal(t, JSONMediaType, r.Header.Get("Content-Type"))
		assert.Equal(t, JSONMediaType, r.Header.Get("Accept"))
		assert.Equal(t, "Bearer t0k3n", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(body))

		w.WriteHeader(http.StatusOK)
	})

	client, teardown := NewTestingHTTPClient(h)
	defer teardown()

	res, err := client.PostResource(
		context.Background(),
		[]byte(`{"a":1}`),
		JSONMediaType,
		JSONMediaType,
		testURI,
		&oauth2.Token{AccessToken: "t0k3n"},
	)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestClient_GetResource_no_token(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusNoContent)
	})

	client, teardown := NewTestingHTTPClient(h)
	defer teardown()

	res, err := client.GetResource(context.Background(), JSONMediaType, testURI, nil)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestClient_GetResource_cancelled(t *testing.T) {
	client := NewClient(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetResource(ctx, JSONMediaType, testURI, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_GetResource_bad_uri(t *testing.T) {
	client := NewClient(nil)

	_, err := client.GetResource(context.Background(), JSONMediaType, string([]byte{0x7f}), nil)
	assert.ErrorContains(t, err, "request creation failed")
}
