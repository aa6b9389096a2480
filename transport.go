// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gogama/respx/config"
	"github.com/gogama/respx/request"
	"github.com/gogama/respx/timeout"
	"golang.org/x/net/http2"
)

// A Transport transmits one attempt and reports its raw outcome.
//
// Execute must never return nil. A transport failure is reported in
// the Err field of the returned Raw, and a timeout must be reported by
// an error whose Timeout method returns true so that
// transient.Categorize recognizes it.
type Transport interface {
	Execute(ctx context.Context, a *request.Attempt) *request.Raw
}

// The TransportFunc type is an adapter to allow the use of ordinary
// functions as transports.
type TransportFunc func(ctx context.Context, a *request.Attempt) *request.Raw

// Execute calls f(ctx, a).
func (f TransportFunc) Execute(ctx context.Context, a *request.Attempt) *request.Raw {
	return f(ctx, a)
}

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// An HTTPTransport is a Transport which sends attempts through an
// HTTPDoer. Its zero value uses http.DefaultClient.
//
// Every transmission gets its own timeout: the attempt's Timeout if
// positive, otherwise the one chosen by TimeoutPolicy. The response
// body is read to the end and buffered.
type HTTPTransport struct {
	// Doer sends requests. If nil, http.DefaultClient is used.
	Doer HTTPDoer
	// TimeoutPolicy chooses attempt timeouts for attempts with no
	// Timeout of their own. If nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
}

// Execute sends the attempt's plan and buffers the response.
func (t *HTTPTransport) Execute(ctx context.Context, a *request.Attempt) *request.Raw {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout.Resolve(t.TimeoutPolicy, a))
	defer cancel()

	raw := &request.Raw{}
	resp, err := t.doer().Do(a.Plan.ToRequest(ctx))
	if err != nil {
		raw.Err = urlErrorWrap(a.Plan, err)
		raw.Elapsed = time.Since(start)
		return raw
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw.StatusCode = resp.StatusCode
	raw.Header = resp.Header
	raw.Body, err = io.ReadAll(resp.Body)
	if err != nil {
		raw.Err = urlErrorWrap(a.Plan, err)
	}
	raw.Elapsed = time.Since(start)
	return raw
}

// CloseIdleConnections invokes the same method on the underlying
// HTTPDoer, if it has one.
func (t *HTTPTransport) CloseIdleConnections() {
	if ic, ok := t.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (t *HTTPTransport) doer() HTTPDoer {
	if t.Doer == nil {
		return http.DefaultClient
	}

	return t.Doer
}

// NewHTTPClient returns an http.Client for use as an HTTPDoer, sized
// by cfg and speaking HTTP/2 over TLS when cfg.HTTP2 is set. A nil cfg
// means config.Default(). A nil tlsConfig means the system defaults.
//
// The client has no overall timeout since HTTPTransport sets one on
// every attempt.
func NewHTTPClient(cfg *config.Config, tlsConfig *tls.Config) (*http.Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          cfg.MaxIdleConns,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if tlsConfig != nil {
		t.TLSClientConfig = tlsConfig.Clone()
	}
	if cfg.HTTP2 {
		if _, err := http2.ConfigureTransports(t); err != nil {
			return nil, err
		}
	}
	return &http.Client{Transport: t}, nil
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
