// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/esimkit/apiclient/common"
)

const (
	MinOrderQuantity = 1
	MaxOrderQuantity = 50
)

// OrderRequest is the body of POST /v2/orders.
type OrderRequest struct {
	PackageID string `json:"package_id"`
	Quantity  int    `json:"quantity"`
	// Description is free text stored with the order on the provider side.
	Description string `json:"description,omitempty"`
}

// Validate checks the request against the limits the API documents.
func (o OrderRequest) Validate() error {
	if o.PackageID == "" {
		return fmt.Errorf("%w: missing package id", ErrInvalidArgument)
	}

	if o.Quantity < MinOrderQuantity || o.Quantity > MaxOrderQuantity {
		return fmt.Errorf(
			"%w: quantity %d, it must be an integer between %d and %d",
			ErrInvalidArgument, o.Quantity, MinOrderQuantity, MaxOrderQuantity,
		)
	}

	return nil
}

// Order is the provider's record of a submitted order.
type Order struct {
	ID          ID      `json:"id"`
	Code        string  `json:"code"`
	PackageID   string  `json:"package_id"`
	Quantity    int     `json:"quantity"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Currency    string  `json:"currency"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"created_at"`
	Sims        []Sim   `json:"sims"`
}

// OrderResult is what SubmitOrder hands back: the decoded response body
// verbatim, plus the fields most callers need.
type OrderResult struct {
	Raw     json.RawMessage
	OrderID ID
	Order   Order
}

// SubmitOrder places an order for req.Quantity eSIMs of req.PackageID.
//
// A request outside the documented limits fails with ErrInvalidArgument
// before anything is sent. If token is empty a new one is obtained through
// Authenticate, and ErrAuthenticationFailed is returned when that fails softly.
// Any response other than 200 OK is returned as an *HTTPError.
func (c *Client) SubmitOrder(ctx context.Context, req OrderRequest, token string) (*OrderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tok, err := c.resolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding order: %w", err)
	}

	res, err := c.HTTP.PostResource(ctx, body, common.JSONMediaType, common.JSONMediaType, c.endpoint(nil, "orders"), tok)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := common.DecodeJSONBody(res, &raw); err != nil {
		return nil, fmt.Errorf("failure decoding order response: %w", err)
	}

	return orderFromRaw(raw)
}

func orderFromRaw(raw json.RawMessage) (*OrderResult, error) {
	var env struct {
		Data Order `json:"data"`
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failure decoding order: %w", err)
	}

	if env.Data.ID == "" {
		return nil, fmt.Errorf("order response without an id")
	}

	return &OrderResult{
		Raw:     raw,
		OrderID: env.Data.ID,
		Order:   env.Data,
	}, nil
}
