// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package config holds the process-wide defaults every call starts from:
date decoding strategy, success and retry codes, retry ceiling, latency
floor, attempt timeout, logger, and the global success and unauthorized
hooks.

A Config is built once at startup and never mutated afterward. Build it
from code:

	cfg := config.New(
		config.WithRetryCodes(status.NewSet(status.TimedOut, status.RequestTimeout)),
		config.WithRetryAttempts(2),
		config.WithUnauthorizedHook(logout),
	)

or load it from defaults, an optional YAML file and RESPX_* environment
variables, in increasing order of priority:

	cfg, err := config.Load(config.FromFile("respx.yaml"), config.Options(config.WithUnauthorizedHook(logout)))

To change the configuration at runtime, build a new Config and publish
it through a Holder; calls already in flight keep the Config they
started with.
*/
package config
