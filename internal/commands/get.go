// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/gogama/respx"
	"github.com/gogama/respx/config"
	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/failure"
	"github.com/gogama/respx/observe"
	"github.com/gogama/respx/request"
	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// GetOptions holds options for the get command
type GetOptions struct {
	ConfigPath    string
	Method        string
	Data          string
	Headers       []string
	Shape         string
	RetryAttempts int
	RetryCodes    []string
	Timeout       time.Duration
	LatencyFloor  time.Duration
	Dates         string
	Metrics       bool
}

// ErrAbandoned is returned when the call ends without delivery.
var ErrAbandoned = errors.New("call abandoned")

// NewGetCommand creates the get command
func NewGetCommand() *cobra.Command {
	opts := &GetOptions{}

	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Send a request and print the resolved result",
		Long: `Sends one request through a respx client and prints the delivered
result: the decoded value on success, or the composed error message.

The body is decoded according to --shape: empty, raw, string, int,
float, bool, or json.`,
		Example: `  # Decode a JSON object
  respx get https://api.example.com/users/1 --shape json

  # Retry timeouts twice, reading settings from stdin
  respx get https://api.example.com/slow --retry-codes timedout,408 --retry-attempts 2 --config - < respx.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file, or - for stdin")
	cmd.Flags().StringVarP(&opts.Method, "method", "X", "GET", "HTTP method")
	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "Request body")
	cmd.Flags().StringArrayVarP(&opts.Headers, "header", "H", nil, "Request header as 'Name: value' (repeatable)")
	cmd.Flags().StringVarP(&opts.Shape, "shape", "s", "raw", "Expected body shape")
	cmd.Flags().IntVar(&opts.RetryAttempts, "retry-attempts", 0, "Retry ceiling")
	cmd.Flags().StringSliceVar(&opts.RetryCodes, "retry-codes", nil, "Codes that trigger a retry, e.g. 503,timedout")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Per-attempt timeout")
	cmd.Flags().DurationVar(&opts.LatencyFloor, "floor", 0, "Latency floor for successful responses")
	cmd.Flags().StringVar(&opts.Dates, "dates", "", "Date strategy for json bodies")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "Print call metrics after the result")

	return cmd
}

func runGet(cmd *cobra.Command, url string, opts *GetOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	shape, err := parseShape(opts.Shape)
	if err != nil {
		return err
	}

	callOpts, err := callOptions(cmd, opts)
	if err != nil {
		return err
	}

	p, err := request.NewPlanWithContext(cmd.Context(), opts.Method, url, bodyOrNil(opts.Data))
	if err != nil {
		return err
	}
	for _, h := range opts.Headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("invalid header %q", h)
		}
		p.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	doer, err := respx.NewHTTPClient(cfg, nil)
	if err != nil {
		return err
	}
	cl := &respx.Client{
		Transport: &respx.HTTPTransport{Doer: doer},
		Config:    config.NewHolder(cfg),
		Handlers:  &respx.HandlerGroup{},
	}
	defer cl.CloseIdleConnections()

	var reader *sdkmetric.ManualReader
	if opts.Metrics {
		reader = sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = provider.Shutdown(context.Background()) }()
		m, err := observe.NewMetrics(provider)
		if err != nil {
			return err
		}
		m.Install(cl.Handlers)
	}

	out := cmd.OutOrStdout()
	var result error
	call := cl.NewCall(p, shape, callOpts...)
	call.OnSuccessExtended = func(s *respx.Success) {
		fmt.Fprintf(out, "%d %s\n", s.Status.Int(), s.Status)
		result = printValue(out, s.Value)
	}
	call.OnError = func(err *failure.Error) {
		result = err
	}

	o := cl.Do(call)
	if reader != nil {
		if err := printMetrics(out, reader); err != nil {
			return err
		}
	}
	if o.State == respx.Abandoned {
		return ErrAbandoned
	}
	return result
}

func loadConfig(cmd *cobra.Command, opts *GetOptions) (*config.Config, error) {
	var loadOpts []config.LoadOption
	switch opts.ConfigPath {
	case "":
	case "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read config from stdin: %w", err)
		}
		loadOpts = append(loadOpts, config.FromYAML(b))
	default:
		loadOpts = append(loadOpts, config.FromFile(opts.ConfigPath))
	}
	s, err := config.LoadSettings(loadOpts...)
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(s.Log.Level, s.Log.Pretty, cmd.ErrOrStderr())
	return config.FromSettings(s, config.WithLogger(logger))
}

func callOptions(cmd *cobra.Command, opts *GetOptions) ([]respx.CallOption, error) {
	var callOpts []respx.CallOption
	flags := cmd.Flags()
	if flags.Changed("retry-attempts") {
		callOpts = append(callOpts, respx.WithRetryAttempts(opts.RetryAttempts))
	}
	if flags.Changed("retry-codes") {
		codes, err := config.ParseCodes(opts.RetryCodes)
		if err != nil {
			return nil, err
		}
		callOpts = append(callOpts, respx.WithRetryCodes(codes))
	}
	if flags.Changed("timeout") {
		callOpts = append(callOpts, respx.WithTimeout(opts.Timeout))
	}
	if flags.Changed("floor") {
		callOpts = append(callOpts, respx.WithLatencyFloor(opts.LatencyFloor))
	}
	if opts.Dates != "" {
		ds, err := decode.ParseDateStrategy(opts.Dates)
		if err != nil {
			return nil, err
		}
		callOpts = append(callOpts, respx.WithDates(ds))
	}
	return callOpts, nil
}

func parseShape(s string) (decode.Shape, error) {
	switch strings.ToLower(s) {
	case "empty":
		return decode.Empty(), nil
	case "raw", "":
		return decode.Raw(), nil
	case "string":
		return decode.Scalar(decode.String), nil
	case "int":
		return decode.Scalar(decode.Int), nil
	case "float":
		return decode.Scalar(decode.Float), nil
	case "bool":
		return decode.Scalar(decode.Bool), nil
	case "json":
		return decode.StructuredOf[map[string]interface{}](), nil
	default:
		return decode.Shape{}, fmt.Errorf("unknown shape %q", s)
	}
}

func bodyOrNil(data string) interface{} {
	if data == "" {
		return nil
	}
	return data
}

func printValue(w io.Writer, v interface{}) error {
	switch x := v.(type) {
	case decode.Nothing:
		return nil
	case []byte:
		_, err := w.Write(x)
		if err == nil && len(x) > 0 && x[len(x)-1] != '\n' {
			_, err = io.WriteString(w, "\n")
		}
		return err
	case *map[string]interface{}:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(*x)
	default:
		_, err := fmt.Fprintln(w, x)
		return err
	}
}

func printMetrics(w io.Writer, reader *sdkmetric.ManualReader) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		return err
	}
	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[m.Name] += dp.Value
				}
			}
		}
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s %d\n", name, totals[name])
	}
	return nil
}
