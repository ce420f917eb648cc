// Copyright 2024 the scwserverless authors
//
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

// Package scaleway implements the JSON REST client for the Scaleway
// serverless products (containers, functions, container registry).
package scaleway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

// Regions lists the regions in which the serverless products are available.
var Regions = []string{"fr-par", "nl-ams", "pl-waw"}

const (
	authHeader = "X-Auth-Token"

	// pageSize is the page_size sent on list calls. Listings iterate until
	// the API returns a short page.
	pageSize = 50

	// requestsPerMinute seeds the client side rate limiter. It is adjusted
	// from the X-RateLimit response headers as soon as the API reports its
	// actual quota.
	requestsPerMinute = 300
)

// APIError is a non-2xx answer from the Scaleway API.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scaleway api error [%d: %s]", e.StatusCode, e.Message)
}

// Client talks to the regional Scaleway REST endpoints. All methods block
// until the API answers; asynchronous provisioning is observed by polling
// the resource status, not by the client.
type Client struct {
	httpCl    *http.Client
	apiURL    string
	secretKey string
	limiter   *rateLimiter
}

// NewClient returns a client authenticated with the given secret key.
func NewClient(apiURL, secretKey string) *Client {
	return &Client{
		httpCl:    &http.Client{Timeout: 30 * time.Second},
		apiURL:    apiURL,
		secretKey: secretKey,
		limiter:   newRateLimiter(requestsPerMinute),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.apiURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set(authHeader, c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	tflog.Debug(ctx, "calling scaleway api", map[string]any{
		"method": method,
		"path":   path,
	})
	resp, err := c.httpCl.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	c.limiter.Observe(ctx, resp.Header)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func pageQuery(page int, extra url.Values) url.Values {
	q := url.Values{}
	for k, vs := range extra {
		q[k] = vs
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return q
}

// SecretVar is the write-only representation of a secret environment
// variable. The API accepts key/value pairs but never echoes the values
// back on read.
type SecretVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SecretVarsFromMap converts a plain map into the API's key/value pair
// list, which is the only shape create and update calls accept.
func SecretVarsFromMap(m map[string]string) []SecretVar {
	if m == nil {
		return nil
	}
	vars := make([]SecretVar, 0, len(m))
	for k, v := range m {
		vars = append(vars, SecretVar{Key: k, Value: v})
	}
	return vars
}
