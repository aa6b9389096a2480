// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const nilCtxMsg = "respx/request: nil context"

// A Plan describes the HTTP request sent on every attempt of a call.
//
// Like http.Request, a Plan has a context which controls the in-flight
// transmission. Cancelling the context aborts the transport call, but
// it is the Attempt cancellation flag that suppresses response
// processing and delivery.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string
	// URL specifies the URL to access.
	URL *urlpkg.URL
	// Header contains the request header fields to be sent.
	Header http.Header
	// Body is the pre-buffered request body. A nil or empty body
	// indicates no request body should be sent.
	Body []byte

	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(method, url string, body interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional body.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, or io.Reader. An io.Reader is read to the end and buffered,
// and closed if it is also an io.Closer.
func NewPlanWithContext(ctx context.Context, method, url string, body interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = http.MethodGet
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("respx/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
	}, nil
}

// Context returns the plan's context. The returned context is always
// non-nil; it defaults to the background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// Host returns the target host of the plan, including the port if one
// was given.
func (p *Plan) Host() string {
	if p.URL == nil {
		return ""
	}
	return p.URL.Host
}

// Endpoint returns the target path of the plan.
func (p *Plan) Endpoint() string {
	if p.URL == nil {
		return ""
	}
	return p.URL.Path
}

// ToRequest creates the HTTP request for one transmission of the plan.
// The context of the new request is set to ctx, which may not be nil.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	method := p.Method
	if method == "" {
		method = http.MethodGet
	}
	r := &http.Request{
		Method:     method,
		URL:        p.URL,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     p.Header.Clone(),
		Host:       p.Host(),
	}
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	if len(p.Body) > 0 {
		body := p.Body
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		r.ContentLength = int64(len(body))
	}
	return r.WithContext(ctx)
}

func validMethod(method string) bool {
	return strings.IndexFunc(method, func(r rune) bool {
		return !httpguts.IsTokenRune(r)
	}) == -1
}
