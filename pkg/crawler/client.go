// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package crawler

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	rverrors "github.com/DMTF/Redfish-URI-Validator/pkg/errors"
	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
)

const (
	sessionsPath = "/redfish/v1/SessionService/Sessions"

	defaultWorkers = 4
	defaultTimeout = 30 * time.Second
)

// Client retrieves resources from a Redfish service. It prefers Redfish
// session authentication and falls back to HTTP basic auth when the service
// does not expose a session service.
type Client struct {
	base     *url.URL
	httpc    *http.Client
	username string
	password string
	workers  int
	limiter  *rate.Limiter

	token      string
	sessionURI string
	useBasic   bool
}

// Option is a functional option for configuring Client instances.
type Option func(*Client)

// WithHTTPClient returns an Option that replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithInsecureTLS returns an Option that disables TLS certificate
// verification. BMCs commonly present self-signed certificates.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.httpc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithWorkers returns an Option that bounds the number of concurrent
// requests during a crawl.
func WithWorkers(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithRateLimit returns an Option that paces requests to at most rps per
// second. Zero or negative disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// New creates a Client for the service at host, which must carry a scheme
// prefix (e.g. https://bmc.example.com).
func New(host, username, password string, opts ...Option) (*Client, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeTransport, fmt.Sprintf("invalid service address %q", host), err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, rverrors.Newf(rverrors.ErrCodeTransport,
			"service address %q must include an http or https prefix", host)
	}

	c := &Client{
		base:     base,
		httpc:    &http.Client{Timeout: defaultTimeout},
		username: username,
		password: password,
		workers:  defaultWorkers,
		limiter:  rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login establishes a Redfish session. Services without a session service
// fall back to basic authentication on subsequent requests.
func (c *Client) Login(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"UserName": c.username,
		"Password": c.password,
	})
	if err != nil {
		return rverrors.Wrap(rverrors.ErrCodeInternal, "failed to encode session request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(sessionsPath), bytes.NewReader(body))
	if err != nil {
		return rverrors.Wrap(rverrors.ErrCodeTransport, "failed to build session request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return rverrors.Wrap(rverrors.ErrCodeTransport, "failed to reach session service", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		c.token = resp.Header.Get("X-Auth-Token")
		if c.token == "" {
			return rverrors.New(rverrors.ErrCodeAuth, "session service returned no X-Auth-Token")
		}
		if loc := resp.Header.Get("Location"); loc != "" {
			c.sessionURI = loc
		}
		slog.Debug("established session", "service", c.base.String())
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return rverrors.Newf(rverrors.ErrCodeAuth,
			"service rejected credentials for user %q", c.username)
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusMethodNotAllowed ||
		resp.StatusCode == http.StatusNotImplemented:
		// No session service; authenticate per request instead.
		c.useBasic = true
		slog.Debug("no session service, using basic auth", "status", resp.StatusCode)
		return nil
	default:
		return rverrors.Newf(rverrors.ErrCodeTransport,
			"session service returned unexpected status %d", resp.StatusCode)
	}
}

// Logout deletes the session established by Login, if any.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" || c.sessionURI == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(c.sessionURI), nil)
	if err != nil {
		return rverrors.Wrap(rverrors.ErrCodeTransport, "failed to build logout request", err)
	}
	req.Header.Set("X-Auth-Token", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return rverrors.Wrap(rverrors.ErrCodeTransport, "failed to delete session", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.token = ""
	c.sessionURI = ""
	return nil
}

// get retrieves and decodes one resource by path.
func (c *Client) get(ctx context.Context, path string) (*resource.Resource, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeTransport, fmt.Sprintf("failed to build request for %q", path), err)
	}
	req.Header.Set("Accept", "application/json")
	switch {
	case c.token != "":
		req.Header.Set("X-Auth-Token", c.token)
	case c.useBasic:
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeTransport, fmt.Sprintf("failed to retrieve %q", path), err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, rverrors.Newf(rverrors.ErrCodeAuth, "unauthorized retrieving %q", path)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, rverrors.Newf(rverrors.ErrCodeTransport,
			"unexpected status %d retrieving %q", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeTransport, fmt.Sprintf("failed to read %q", path), err)
	}

	res, err := resource.Parse(body)
	if err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeTransport, fmt.Sprintf("failed to decode %q", path), err)
	}
	return res, nil
}

func (c *Client) endpoint(path string) string {
	ref := &url.URL{Path: path}
	return c.base.ResolveReference(ref).String()
}
