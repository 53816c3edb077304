// Zaparoo GiantBomb
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo GiantBomb.
//
// Zaparoo GiantBomb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo GiantBomb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo GiantBomb.  If not, see <http://www.gnu.org/licenses/>.

// Package httpclient provides the HTTP transport used by the API clients.
package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ZaparooProject/giantbomb/pkg/config"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeoutSeconds is the default timeout for HTTP requests
	DefaultTimeoutSeconds = 30
)

// LoggingTransport logs every round trip at debug level. The query string is
// never logged because it carries the API key.
type LoggingTransport struct {
	Base  http.RoundTripper
	Clock clockwork.Clock
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	clock := t.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	start := clock.Now()
	resp, err := base.RoundTrip(req)
	elapsed := clock.Since(start)
	if err != nil {
		log.Debug().
			Err(err).
			Str("method", req.Method).
			Str("host", req.URL.Host).
			Str("path", req.URL.Path).
			Dur("elapsed", elapsed).
			Msg("http round trip failed")
		return nil, fmt.Errorf("failed to perform HTTP round trip: %w", err)
	}

	log.Debug().
		Str("method", req.Method).
		Str("host", req.URL.Host).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("http round trip")
	return resp, nil
}

// RateLimitTransport holds each request until Limiter allows it. Waiting
// stops early when the request context is done.
type RateLimitTransport struct {
	Base    http.RoundTripper
	Limiter *rate.Limiter
}

// RoundTrip implements http.RoundTripper.
func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}
	//nolint:wrapcheck // RoundTripper interface requires unwrapped error
	return base.RoundTrip(req)
}

// NewLimiter allows perSecond requests per second with a burst of one. Zero
// or less means no limit.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// DefaultTransport provides a configured transport with connection pooling and reasonable timeouts
var DefaultTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: 30 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
}

// Client provides an HTTP client with request logging and sensible defaults
type Client struct {
	*http.Client
}

// NewClient creates a new HTTP client without an overall timeout.
func NewClient() *Client {
	return NewClientWithTimeout(0)
}

// NewClientWithTimeout creates a new HTTP client with a custom timeout
func NewClientWithTimeout(timeout time.Duration) *Client {
	return newClient(timeout, nil)
}

func newClient(timeout time.Duration, limiter *rate.Limiter) *Client {
	var transport http.RoundTripper = DefaultTransport
	if limiter != nil {
		transport = &RateLimitTransport{Base: transport, Limiter: limiter}
	}
	return &Client{
		Client: &http.Client{
			Transport: &LoggingTransport{Base: transport},
			Timeout:   timeout,
		},
	}
}

// NewClientFromConfig creates a new HTTP client using the configured timeout,
// falling back to DefaultTimeoutSeconds, and the configured request rate.
func NewClientFromConfig(cfg *config.Instance) *Client {
	timeout := DefaultTimeoutSeconds * time.Second
	var limiter *rate.Limiter
	if cfg != nil {
		if t := cfg.Timeout(); t > 0 {
			timeout = t
		}
		if rps := cfg.RequestsPerSecond(); rps > 0 {
			limiter = NewLimiter(rps)
		}
	}
	return newClient(timeout, limiter)
}

// DefaultClient provides a shared HTTP client instance
var DefaultClient = NewClientWithTimeout(DefaultTimeoutSeconds * time.Second)
