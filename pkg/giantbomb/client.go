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

// Package giantbomb is a client for the Giant Bomb video game API.
//
// Each API resource has its own client type. Resources addressed by id, such
// as "game", implement Fetcher. Collection resources, such as "games" and
// "platforms", implement Searcher. All of them validate the requested field,
// filter and sort names against the resource Schema before any request is
// made, so a rejected field never costs an API call.
//
// Clients are not safe for concurrent use while APIKey or Format are being
// changed.
package giantbomb

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ZaparooProject/giantbomb/pkg/shared/httpclient"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the root of the Giant Bomb API.
	DefaultBaseURL = "http://www.giantbomb.com/api/"
	// Version is reported in the User-Agent header.
	Version = "1.0.0"

	maxBodyBytes = 10 << 20
)

// DefaultUserAgent identifies this library to the API.
var DefaultUserAgent = "giantbomb-go/" + Version

// Doer sends HTTP requests. *http.Client and *httpclient.Client satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client holds the credentials and transport shared by the resource clients.
type Client struct {
	http      Doer
	APIKey    string
	Format    string
	BaseURL   string
	UserAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.BaseURL = baseURL
	}
}

// WithFormat sets the format parameter sent with every request. Only json
// responses are decoded, so any other format fails each request with
// ErrInvalidArgument before it is sent.
func WithFormat(format string) Option {
	return func(c *Client) {
		c.Format = format
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.UserAgent = ua
	}
}

// NewClient creates a Client using apiKey for every request.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		http:      httpclient.DefaultClient,
		APIKey:    apiKey,
		Format:    FormatJSON,
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resourceURL builds the request URL for path below the base URL.
func (c *Client) resourceURL(path string, params *Params) (string, error) {
	base := cmp.Or(c.BaseURL, DefaultBaseURL)
	u, err := url.Parse(strings.TrimSuffix(base, "/") + "/" + path)
	if err != nil {
		return "", fmt.Errorf("%w: base url %q: %w", ErrInvalidArgument, base, err)
	}
	u.RawQuery = FinalizeParams(params, c.APIKey, c.Format).Encode()
	return u.String(), nil
}

// get sends one GET request and turns the reply into a Response. HTTP
// failures become RequestError, API failures ResponseError, and bodies
// missing the standard keys MalformedResponseError.
func (c *Client) get(ctx context.Context, path string, params *Params) (*Response, error) {
	if format := cmp.Or(c.Format, FormatJSON); format != FormatJSON {
		return nil, fmt.Errorf("%w: format %q cannot be decoded, only %s is supported",
			ErrInvalidArgument, format, FormatJSON)
	}

	reqURL, err := c.resourceURL(path, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", cmp.Or(c.UserAgent, DefaultUserAgent))
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	logger := log.With().Str("request_id", reqID).Str("path", path).Logger()
	logger.Debug().Msg("giantbomb request")

	resp, err := c.http.Do(req)
	if err != nil {
		err = c.redactError(err)
		logger.Warn().Err(err).Msg("giantbomb request failed")
		return nil, &RequestError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("error reading body: %w", c.redactError(err)),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn().Int("status", resp.StatusCode).Msg("giantbomb http error")
		return nil, &RequestError{StatusCode: resp.StatusCode, Err: httpError(resp.StatusCode, body)}
	}

	env, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}
	if err := env.checkStatus(); err != nil {
		logger.Warn().Err(err).Msg("giantbomb api error")
		return nil, err
	}

	uri := req.URL.String()
	if resp.Request != nil && resp.Request.URL != nil {
		uri = resp.Request.URL.String()
	}

	out, err := env.normalize(uri)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("page_results", out.NumPageResults).
		Int("total_results", out.NumTotalResults).
		Msg("giantbomb response")
	return out, nil
}

// redactedError hides the API key in the message of err. The cause stays
// reachable through errors.Is and errors.As.
type redactedError struct {
	err error
	msg string
}

func (e *redactedError) Error() string {
	return e.msg
}

func (e *redactedError) Unwrap() error {
	return e.err
}

// redactError removes the API key from transport errors, which quote the
// full request URL.
func (c *Client) redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactAPIKey(urlErr.URL)
	}
	if c.APIKey == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, c.APIKey) {
		return err
	}
	return &redactedError{err: err, msg: strings.ReplaceAll(msg, c.APIKey, redactedValue)}
}

// httpError describes a non-2xx reply, preferring the API's own message.
func httpError(statusCode int, body []byte) error {
	if env, err := parseEnvelope(body); err == nil {
		if msg := env.stringField(keyError); msg != "" {
			return errors.New(msg)
		}
	}
	switch statusCode {
	case http.StatusUnauthorized:
		return errors.New("authentication failed - check API key")
	case http.StatusTooManyRequests:
		return errors.New("rate limited by Giant Bomb")
	case http.StatusNotFound:
		return errors.New("resource not found")
	default:
		if text := http.StatusText(statusCode); text != "" {
			return errors.New(strings.ToLower(text))
		}
		return fmt.Errorf("unexpected status %d", statusCode)
	}
}
