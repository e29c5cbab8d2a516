// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package backend is the sole network boundary between this server and the
// portal REST API. Every call forwards the browser's session cookie,
// translates non-2xx responses into a single human-readable error, and
// decodes JSON into typed structs. No call is retried or cached.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client issues requests against the portal backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client for the given base URL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a backend failure translated into a display message.
// Message priority: the body's "detail" field, then "message", then a
// generic status-coded fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// errorBody is the optional JSON error envelope the backend may return.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// request describes one backend call before it is executed.
type request struct {
	body        io.Reader
	contentType string
	cookies     string
}

// Option configures a backend request.
type Option func(*request) error

// WithJSON marshals v as the JSON request body.
func WithJSON(v any) Option {
	return func(req *request) error {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("backend marshal: %w", err)
		}
		req.body = bytes.NewReader(payload)
		req.contentType = "application/json"
		return nil
	}
}

// WithMultipart sets a multipart body. The content type must carry the
// boundary produced by the multipart writer; the JSON content type is not
// applied so the boundary survives intact.
func WithMultipart(contentType string, body io.Reader) Option {
	return func(req *request) error {
		req.body = body
		req.contentType = contentType
		return nil
	}
}

// WithCookies forwards the inbound request's Cookie header, carrying the
// browser's backend session to the API.
func WithCookies(r *http.Request) Option {
	return func(req *request) error {
		if r != nil {
			req.cookies = r.Header.Get("Cookie")
		}
		return nil
	}
}

// do executes a backend call and returns the raw response for any 2xx
// status. Non-2xx responses are drained, translated into *APIError, and
// never returned to the caller. The caller owns closing the body.
func (c *Client) do(ctx context.Context, method, path string, opts ...Option) (*http.Response, error) {
	var req request
	for _, opt := range opts {
		if err := opt(&req); err != nil {
			return nil, err
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, req.body)
	if err != nil {
		return nil, fmt.Errorf("backend request: %w", err)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.cookies != "" {
		httpReq.Header.Set("Cookie", req.cookies)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("backend http: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, translateError(resp)
	}

	return resp, nil
}

// translateError builds the APIError for a non-2xx response. A JSON body
// with detail or message wins; an unparseable body falls back to the
// status-coded message.
func translateError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("Erro na requisição (%d).", resp.StatusCode),
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return apiErr
	}

	if body.Detail != "" {
		apiErr.Message = body.Detail
	} else if body.Message != "" {
		apiErr.Message = body.Message
	}

	return apiErr
}

// doJSON executes a call and decodes the JSON response into T. A 204
// response yields the zero value, since there is no body to parse.
func doJSON[T any](ctx context.Context, c *Client, method, path string, opts ...Option) (T, error) {
	var out T

	resp, err := c.do(ctx, method, path, opts...)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return out, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("backend decode: %w", err)
	}

	return out, nil
}

// doDiscard executes a call whose response body is irrelevant (deletes and
// other 204-style endpoints).
func (c *Client) doDiscard(ctx context.Context, method, path string, opts ...Option) error {
	resp, err := c.do(ctx, method, path, opts...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}
