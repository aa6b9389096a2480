// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry decides whether an attempt is re-executed, and how
// long to wait before re-executing it.
//
// The core rule is ShouldRetry: a retry happens only while the attempt
// count is below the configured ceiling, and only if the trigger is
// covered by the configured retry set. A status trigger is covered when
// the classified status is in the set; a timeout trigger is covered
// only when the set contains both status.TimedOut and
// status.RequestTimeout.
//
// A Policy combines a Decider, which answers the retry question, with
// a Waiter, which computes the pause before the next attempt:
//
//	decider := retry.Configured.And(retry.Before(30 * time.Second))
//	waiter := retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, time.Now())
//	policy := retry.NewPolicy(decider, waiter)
//
// Deciders and waiters never mutate the attempt; the client increments
// the attempt count after a positive decision.
package retry
