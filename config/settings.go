// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/status"
	"github.com/rs/zerolog"
)

// Settings is the file and environment form of a Config.
//
// Status code lists hold integers, or one of the names "timedout" and
// "undecodable" for the synthetic codes.
type Settings struct {
	Dates struct {
		Strategy string `koanf:"strategy"`
	} `koanf:"dates"`
	Success struct {
		Codes []string `koanf:"codes"`
	} `koanf:"success"`
	Retry struct {
		Codes    []string      `koanf:"codes"`
		Attempts int           `koanf:"attempts"`
		Wait     time.Duration `koanf:"wait"`
	} `koanf:"retry"`
	Latency struct {
		Floor time.Duration `koanf:"floor"`
	} `koanf:"latency"`
	Timeout struct {
		Attempt time.Duration `koanf:"attempt"`
	} `koanf:"timeout"`
	Log struct {
		Level  string `koanf:"level"`
		Pretty bool   `koanf:"pretty"`
	} `koanf:"log"`
	Transport struct {
		HTTP2        bool `koanf:"http2"`
		MaxIdleConns int  `koanf:"maxidleconns"`
	} `koanf:"transport"`
}

// DefaultSettings returns the settings used when nothing else is
// configured.
func DefaultSettings() Settings {
	var s Settings
	s.Dates.Strategy = "iso8601"
	s.Success.Codes = []string{"200", "201", "202", "203", "204", "205", "206"}
	s.Log.Level = "info"
	s.Transport.HTTP2 = true
	s.Transport.MaxIdleConns = 100
	return s
}

func defaultsMap() map[string]interface{} {
	s := DefaultSettings()
	return map[string]interface{}{
		"dates.strategy":         s.Dates.Strategy,
		"success.codes":          s.Success.Codes,
		"retry.codes":            []string{},
		"retry.attempts":         s.Retry.Attempts,
		"retry.wait":             s.Retry.Wait.String(),
		"latency.floor":          s.Latency.Floor.String(),
		"timeout.attempt":        s.Timeout.Attempt.String(),
		"log.level":              s.Log.Level,
		"log.pretty":             s.Log.Pretty,
		"transport.http2":        s.Transport.HTTP2,
		"transport.maxidleconns": s.Transport.MaxIdleConns,
	}
}

// NewLogger builds a zerolog logger writing to w at the given level,
// falling back to info for an unparseable level. If pretty is true,
// output is formatted for humans.
func NewLogger(level string, pretty bool, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// FromSettings validates s and builds a Config from it, logging to
// stderr per s.Log, then applies opts.
func FromSettings(s Settings, opts ...Option) (*Config, error) {
	c, err := fromSettings(s, NewLogger(s.Log.Level, s.Log.Pretty, os.Stderr))
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func fromSettings(s Settings, logger zerolog.Logger) (*Config, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	ds, _ := decode.ParseDateStrategy(s.Dates.Strategy)
	success, _ := ParseCodes(s.Success.Codes)
	retry, _ := ParseCodes(s.Retry.Codes)
	return &Config{
		DateStrategy:  ds,
		SuccessCodes:  success,
		RetryCodes:    retry,
		RetryAttempts: s.Retry.Attempts,
		RetryWait:     s.Retry.Wait,
		LatencyFloor:  s.Latency.Floor,
		Timeout:       s.Timeout.Attempt,
		HTTP2:         s.Transport.HTTP2,
		MaxIdleConns:  s.Transport.MaxIdleConns,
		Logger:        logger,
	}, nil
}

// ParseCodes parses a list of status codes as written in Settings.
func ParseCodes(codes []string) (status.Set, error) {
	cs := make([]status.Code, 0, len(codes))
	var errs []error
	for _, raw := range codes {
		c, err := parseCode(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cs = append(cs, c)
	}
	if len(errs) > 0 {
		return status.Set{}, errors.Join(errs...)
	}
	return status.NewSet(cs...), nil
}

func parseCode(raw string) (status.Code, error) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "timedout":
		return status.TimedOut, nil
	case "undecodable":
		return status.Undecodable, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 999 {
		return status.Unknown, &Error{
			Category: "invalid",
			Value:    raw,
			Message:  "not a status code",
			Action:   `use an integer in [100, 999], "timedout" or "undecodable"`,
		}
	}
	return status.Classify(n), nil
}
