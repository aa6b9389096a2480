// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for the transport timeout applied
// to each attempt of a call, including attempts made after a timeout.
//
// A timeout configured on the attempt itself (request.Attempt.Timeout)
// always takes precedence over the policy; see Resolve.
package timeout
