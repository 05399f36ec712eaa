// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/esimkit/apiclient/common"
)

// SimsPageLimit is the page size requested from GET /v2/sims. Only the first
// page is read.
const SimsPageLimit = 100

// Sim is an eSIM record. Raw keeps the record exactly as received, including
// fields not modelled here.
type Sim struct {
	ID         ID        `json:"id"`
	CreatedAt  string    `json:"created_at"`
	ICCID      string    `json:"iccid"`
	LPA        string    `json:"lpa"`
	MatchingID string    `json:"matching_id"`
	QRCode     string    `json:"qrcode"`
	QRCodeURL  string    `json:"qrcode_url"`
	Simable    *SimOrder `json:"simable,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// SimOrder is the order a Sim belongs to, as embedded by include=order.
type SimOrder struct {
	ID        ID     `json:"id"`
	Code      string `json:"code"`
	PackageID string `json:"package_id"`
	Quantity  int    `json:"quantity"`
}

func (o *Sim) UnmarshalJSON(b []byte) error {
	type plain Sim

	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	*o = Sim(p)
	o.Raw = append(json.RawMessage(nil), b...)

	return nil
}

// BelongsTo reports whether the record references order orderID.
func (o Sim) BelongsTo(orderID ID) bool {
	return o.Simable != nil && o.Simable.ID == orderID
}

// ListEsims returns the eSIMs of order orderID found in the first
// SimsPageLimit records of GET /v2/sims, in the order the API lists them.
//
// Token handling and errors are the same as for SubmitOrder.
func (c *Client) ListEsims(ctx context.Context, orderID ID, token string) ([]Sim, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: missing order id", ErrInvalidArgument)
	}

	tok, err := c.resolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("include", "order")
	q.Set("limit", strconv.Itoa(SimsPageLimit))

	res, err := c.HTTP.GetResource(ctx, common.JSONMediaType, c.endpoint(q, "sims"), tok)
	if err != nil {
		return nil, fmt.Errorf("sims request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var env struct {
		Data []Sim `json:"data"`
	}

	if err := common.DecodeJSONBody(res, &env); err != nil {
		return nil, fmt.Errorf("failure decoding sims response: %w", err)
	}

	return FilterByOrder(env.Data, orderID), nil
}

// FilterByOrder keeps the sims that belong to orderID, preserving order.
func FilterByOrder(sims []Sim, orderID ID) []Sim {
	out := make([]Sim, 0, len(sims))

	for _, s := range sims {
		if s.BelongsTo(orderID) {
			out = append(out, s)
		}
	}

	return out
}
