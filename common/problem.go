// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/moogar0880/problems"
)

// maxErrorBody bounds how much of a failed response is read for a message.
const maxErrorBody = 64 << 10

// HTTPError reports a response whose status did not match the expected one.
type HTTPError struct {
	StatusCode int
	Status     string
	// Message is the provider's explanation, if one could be extracted.
	Message string
}

func (o *HTTPError) Error() string {
	if o.Message == "" {
		return fmt.Sprintf("unexpected HTTP response code %d", o.StatusCode)
	}
	return fmt.Sprintf("unexpected HTTP response code %d: %s", o.StatusCode, o.Message)
}

// CheckResponse returns nil if the response status is one of expected.
// Otherwise the body is consumed and closed, and an *HTTPError is returned.
func CheckResponse(res *http.Response, expected ...int) error {
	for _, exp := range expected {
		if res.StatusCode == exp {
			return nil
		}
	}

	defer DrainAndClose(res)

	herr := &HTTPError{StatusCode: res.StatusCode, Status: res.Status}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return herr
	}

	if strings.HasPrefix(res.Header.Get("Content-Type"), problems.ProblemMediaType) {
		var prob problems.DefaultProblem
		if err := json.Unmarshal(raw, &prob); err == nil {
			herr.Message = prob.Detail
			if herr.Message == "" {
				herr.Message = prob.ProblemTitle()
			}
		}
		return herr
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		herr.Message = env.Meta.Message
	}

	return herr
}
