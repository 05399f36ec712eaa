// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/esimkit/apiclient/auth"
	"github.com/esimkit/apiclient/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClientID     = "myclient"
	testClientSecret = "deadbeef"
	testBaseURL      = "http://airalo.example"
	testPackageID    = "merhaba-7days-1gb"
)

// fakeAiralo is a minimal in-memory stand-in for the partner API.
type fakeAiralo struct {
	t *testing.T

	mu         sync.Mutex
	tokens     map[string]bool
	nextOrder  int
	nextSim    int
	sims       []map[string]interface{} // newest first, as the API lists them
	tokenCalls int
	orderCalls int
	simsCalls  int
}

func newFakeAiralo(t *testing.T) *fakeAiralo {
	return &fakeAiralo{
		t:         t,
		tokens:    map[string]bool{},
		nextOrder: 9000,
		nextSim:   100,
	}
}

// grant makes tok acceptable without going through /v2/token.
func (f *fakeAiralo) grant(tok string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[tok] = true
}

func (f *fakeAiralo) calls() (token, order, sims int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenCalls, f.orderCalls, f.simsCalls
}

func (f *fakeAiralo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	assert.Equal(f.t, common.JSONMediaType, r.Header.Get("Accept"))

	switch r.URL.Path {
	case "/v2/token":
		f.tokenCalls++
		f.serveToken(w, r)
	case "/v2/orders":
		f.orderCalls++
		if !f.authorized(r) {
			reply(f.t, w, http.StatusUnauthorized, nil, "Unauthenticated.")
			return
		}
		f.serveOrder(w, r)
	case "/v2/sims":
		f.simsCalls++
		if !f.authorized(r) {
			reply(f.t, w, http.StatusUnauthorized, nil, "Unauthenticated.")
			return
		}
		f.serveSims(w, r)
	default:
		reply(f.t, w, http.StatusNotFound, nil, "not found")
	}
}

func (f *fakeAiralo) authorized(r *http.Request) bool {
	tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return ok && f.tokens[tok]
}

func (f *fakeAiralo) serveToken(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, http.MethodPost, r.Method)

	var req auth.TokenRequest
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

	if req.GrantType != auth.GrantTypeClientCredentials ||
		req.ClientID != testClientID || req.ClientSecret != testClientSecret {
		reply(f.t, w, http.StatusUnauthorized, []interface{}{}, "Unauthorized.")
		return
	}

	tok := fmt.Sprintf("tok-%d", len(f.tokens)+1)
	f.tokens[tok] = true

	reply(f.t, w, http.StatusOK, map[string]interface{}{
		"token_type":   "Bearer",
		"expires_in":   31622400,
		"access_token": tok,
	}, "success")
}

func (f *fakeAiralo) serveOrder(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, http.MethodPost, r.Method)
	assert.Equal(f.t, common.JSONMediaType, r.Header.Get("Content-Type"))

	var req OrderRequest
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

	if req.Quantity < 1 || req.Quantity > 50 {
		reply(f.t, w, http.StatusUnprocessableEntity,
			map[string]string{"quantity": "The quantity must be between 1 and 50."},
			"the parameter is invalid")
		return
	}

	if req.PackageID != testPackageID {
		reply(f.t, w, http.StatusUnprocessableEntity,
			map[string]string{"package_id": "The selected package is invalid."},
			"the parameter is invalid")
		return
	}

	f.nextOrder++
	orderID := f.nextOrder

	var sims []map[string]interface{}
	for i := 0; i < req.Quantity; i++ {
		f.nextSim++
		sim := map[string]interface{}{
			"id":          f.nextSim,
			"created_at":  "2026-10-14 10:00:00",
			"iccid":       fmt.Sprintf("8944%014d", f.nextSim),
			"lpa":         "lpa.airalo.com",
			"matching_id": fmt.Sprintf("TEST-%d", f.nextSim),
		}
		sims = append(sims, sim)

		listed := map[string]interface{}{}
		for k, v := range sim {
			listed[k] = v
		}
		listed["simable"] = map[string]interface{}{
			"id":         orderID,
			"code":       fmt.Sprintf("2026%d", orderID),
			"package_id": req.PackageID,
			"quantity":   req.Quantity,
		}
		f.sims = append([]map[string]interface{}{listed}, f.sims...)
	}

	reply(f.t, w, http.StatusOK, map[string]interface{}{
		"id":          orderID,
		"code":        fmt.Sprintf("2026%d", orderID),
		"package_id":  req.PackageID,
		"quantity":    req.Quantity,
		"type":        "sim",
		"description": req.Description,
		"currency":    "USD",
		"price":       4.5 * float64(req.Quantity),
		"sims":        sims,
	}, "success")
}

func (f *fakeAiralo) serveSims(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, http.MethodGet, r.Method)
	assert.Equal(f.t, "order", r.URL.Query().Get("include"))
	assert.Equal(f.t, "100", r.URL.Query().Get("limit"))

	page := f.sims
	if len(page) > SimsPageLimit {
		page = page[:SimsPageLimit]
	}
	if page == nil {
		page = []map[string]interface{}{}
	}

	reply(f.t, w, http.StatusOK, page, "success")
}

func reply(t *testing.T, w http.ResponseWriter, code int, data interface{}, msg string) {
	body, err := json.Marshal(map[string]interface{}{
		"data": data,
		"meta": map[string]string{"message": msg},
	})
	require.NoError(t, err)

	w.Header().Set("Content-Type", common.JSONMediaType)
	w.WriteHeader(code)
	_, err = w.Write(body)
	assert.NoError(t, err)
}

func newTestClient(t *testing.T, h http.Handler, id, secret string) *Client {
	client, teardown := common.NewTestingHTTPClient(h)
	t.Cleanup(teardown)

	c, err := New(id, secret, WithBaseURL(testBaseURL), WithHTTPClient(client))
	require.NoError(t, err)

	return c
}
