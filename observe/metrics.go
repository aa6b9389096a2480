// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package observe records OpenTelemetry metrics for calls executed by a
// respx.Client.
//
//	m, err := observe.NewMetrics(nil)
//	...
//	client := &respx.Client{Handlers: m.Install(&respx.HandlerGroup{})}
package observe

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogama/respx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// MeterName is the instrumentation scope of all instruments.
	MeterName = "github.com/gogama/respx"

	MetricAttempts     = "respx.client.attempts"      // Counter
	MetricRetries      = "respx.client.retries"       // Counter
	MetricCalls        = "respx.client.calls"         // Counter
	MetricCallDuration = "respx.client.call.duration" // Histogram in seconds

	AttrMethod     = "http.request.method"
	AttrServer     = "server.address"
	AttrStatus     = "http.response.status_code"
	AttrErrorType  = "error.type"
	AttrRetryCause = "respx.retry.reason"
	AttrState      = "respx.call.state"
	AttrErrorKind  = "respx.error.kind"
)

var durationBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.075, 0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 7.5, 10,
}

// Metrics is a respx.Handler recording attempt, retry and call metrics.
type Metrics struct {
	attempts metric.Int64Counter
	retries  metric.Int64Counter
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates the instruments on a meter from mp. A nil mp means
// the global meter provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(MeterName)

	var m Metrics
	var err error
	var errs []error
	m.attempts, err = meter.Int64Counter(
		MetricAttempts,
		metric.WithDescription("Number of transmissions made by calls"),
		metric.WithUnit("{attempt}"),
	)
	errs = appendErr(errs, MetricAttempts, err)
	m.retries, err = meter.Int64Counter(
		MetricRetries,
		metric.WithDescription("Number of retries decided"),
		metric.WithUnit("{retry}"),
	)
	errs = appendErr(errs, MetricRetries, err)
	m.calls, err = meter.Int64Counter(
		MetricCalls,
		metric.WithDescription("Number of calls ended, by final state"),
		metric.WithUnit("{call}"),
	)
	errs = appendErr(errs, MetricCalls, err)
	m.duration, err = meter.Float64Histogram(
		MetricCallDuration,
		metric.WithDescription("Duration of calls from first transmission to end"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	)
	errs = appendErr(errs, MetricCallDuration, err)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

func appendErr(errs []error, name string, err error) []error {
	if err != nil {
		return append(errs, fmt.Errorf("observe: failed to create %s: %w", name, err))
	}
	return errs
}

// Install adds m to the chains of g for the events it observes, and
// returns g.
func (m *Metrics) Install(g *respx.HandlerGroup) *respx.HandlerGroup {
	g.PushBack(respx.AfterAttempt, m)
	g.PushBack(respx.BeforeRetry, m)
	g.PushBack(respx.AfterCallEnd, m)
	return g
}

// Handle records the metrics for one event.
func (m *Metrics) Handle(evt respx.Event, c *respx.Call) {
	ctx := c.Attempt.Plan.Context()
	base := []attribute.KeyValue{
		attribute.String(AttrMethod, c.Attempt.Plan.Method),
		attribute.String(AttrServer, c.Attempt.Plan.Host()),
	}

	switch evt {
	case respx.AfterAttempt:
		raw := c.Attempt.Raw
		attrs := base
		if raw.HasStatus() {
			attrs = append(attrs, attribute.Int(AttrStatus, raw.StatusCode))
		} else if raw.Timeout() {
			attrs = append(attrs, attribute.String(AttrErrorType, "timeout"))
		} else {
			attrs = append(attrs, attribute.String(AttrErrorType, "transport"))
		}
		m.attempts.Add(ctx, 1, metric.WithAttributes(attrs...))
	case respx.BeforeRetry:
		reason := "status"
		if !c.Attempt.Raw.HasStatus() {
			reason = "timeout"
		}
		m.retries.Add(ctx, 1, metric.WithAttributes(append(base, attribute.String(AttrRetryCause, reason))...))
	case respx.AfterCallEnd:
		o := c.Outcome()
		attrs := append(base, attribute.String(AttrState, o.State.String()))
		if o.Err != nil {
			attrs = append(attrs, attribute.String(AttrErrorKind, o.Err.Kind.String()))
		}
		// The context may be done already; record regardless.
		m.calls.Add(context.WithoutCancel(ctx), 1, metric.WithAttributes(attrs...))
		m.duration.Record(context.WithoutCancel(ctx), c.Attempt.Elapsed().Seconds(), metric.WithAttributes(attrs...))
	}
}
