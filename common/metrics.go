// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "esimkit_client",
		Name:      "requests_total",
		Help:      "Partner API requests by endpoint path and response code.",
	},
	[]string{"endpoint", "code"},
)

// countRequest records one request outcome. A nil res means the transport
// failed before a response was received.
func countRequest(req *http.Request, res *http.Response) {
	code := "error"
	if res != nil {
		code = strconv.Itoa(res.StatusCode)
	}
	requestsTotal.WithLabelValues(req.URL.Path, code).Inc()
}
