/*
 Copyright (c) 2025 Dell Inc. or its subsidiaries. All Rights Reserved.

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package scbe

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	authHeader         = "Authorization"
	defaultHTTPTimeout = 60 * time.Second
)

// APIError is returned for every response whose status differs from the one expected for the verb
type APIError struct {
	Method     string
	URL        string
	Expected   int
	StatusCode int
	Reason     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: expected status %d, got %d. reason: %s. content: %s",
		e.Method, e.URL, e.Expected, e.StatusCode, e.Reason, e.Body)
}

// Unauthorized reports whether the request was rejected for an expired or invalid token
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// NotFound reports whether the requested object does not exist
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Credential is posted to the auth endpoint to obtain a token
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Group    string `json:"group"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// RestClient sends JSON requests to a management REST API authenticated by a token header
type RestClient struct {
	httpClient *http.Client
	baseURL    string
	authPath   string
	referer    string
	credential Credential
	Logger     *logrus.Logger

	mu    sync.RWMutex
	token string
}

// NewRestClient builds a RestClient and fetches the first token
func NewRestClient(ctx context.Context, httpClient *http.Client, baseURL, authPath, referer string, credential Credential, logger *logrus.Logger) (*RestClient, error) {
	c := &RestClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		authPath:   authPath,
		referer:    referer,
		credential: credential,
		Logger:     logger,
	}
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// NewHTTPClient returns an HTTP client honoring the TLS verification setting
func NewHTTPClient(verifySSL bool) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: !verifySSL, // #nosec G402 -- controlled by verify_ssl_certificate
			},
		},
		Timeout: defaultHTTPTimeout,
	}
}

// Authenticate discards the current token and requests a new one
func (c *RestClient) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, c.authPath, nil, c.credential, http.StatusOK, &resp, ""); err != nil {
		return errors.Wrap(err, "unable to get auth token")
	}
	if resp.Token == "" {
		return errors.Errorf("auth response from %s carries no token", c.baseURL+c.authPath)
	}
	c.token = resp.Token
	return nil
}

// Get lists resourcePath, filters are sent as query parameters
func (c *RestClient) Get(ctx context.Context, resourcePath string, filters map[string]string, out interface{}) error {
	query := url.Values{}
	for k, v := range filters {
		query.Set(k, v)
	}
	return c.retryIfTokenExpired(ctx, func() error {
		return c.do(ctx, http.MethodGet, resourcePath, query, nil, http.StatusOK, out, c.currentToken())
	})
}

// Post creates an object under resourcePath
func (c *RestClient) Post(ctx context.Context, resourcePath string, payload, out interface{}) error {
	return c.retryIfTokenExpired(ctx, func() error {
		return c.do(ctx, http.MethodPost, resourcePath, nil, payload, http.StatusCreated, out, c.currentToken())
	})
}

// Delete removes the object at resourcePath, payload may be nil
func (c *RestClient) Delete(ctx context.Context, resourcePath string, payload interface{}) error {
	return c.retryIfTokenExpired(ctx, func() error {
		return c.do(ctx, http.MethodDelete, resourcePath, nil, payload, http.StatusNoContent, nil, c.currentToken())
	})
}

func (c *RestClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// retryIfTokenExpired re-authenticates once and repeats the call once when the token was rejected
func (c *RestClient) retryIfTokenExpired(ctx context.Context, call func() error) error {
	err := call()
	var apiErr *APIError
	if err == nil || !errors.As(err, &apiErr) || !apiErr.Unauthorized() {
		return err
	}

	c.Logger.WithFields(logrus.Fields{
		"method": apiErr.Method,
		"url":    apiErr.URL,
		"reason": apiErr.Reason,
	}).Debug("request unauthorized, getting a new token")

	if err := c.Authenticate(ctx); err != nil {
		return err
	}
	return call()
}

func (c *RestClient) do(ctx context.Context, method, resourcePath string, query url.Values, payload interface{}, expected int, out interface{}, token string) error {
	target := c.baseURL + resourcePath
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "unable to marshal payload for %s %s", method, target)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errors.Wrapf(err, "unable to create request %s %s", method, target)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}
	if token != "" {
		req.Header.Set(authHeader, "Token "+token)
	}

	c.Logger.WithFields(logrus.Fields{
		"method": method,
		"url":    target,
	}).Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, target)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "unable to read response of %s %s", method, target)
	}

	if resp.StatusCode != expected {
		return &APIError{
			Method:     method,
			URL:        target,
			Expected:   expected,
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			Body:       string(respBody),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "unable to parse response of %s %s", method, target)
	}
	return nil
}
