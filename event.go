// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeCall identifies the event that occurs before the first
	// transmission of a call.
	//
	// When Client fires BeforeCall, the call's attempt has its
	// configuration set but no start time and no raw outcome.
	BeforeCall Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual transmission.
	//
	// BeforeAttempt handlers may modify the plan's header, for
	// example to add authentication, since the HTTP request is built
	// from the plan after all handlers have finished.
	BeforeAttempt
	// AfterAttemptTimeout identifies the event that occurs after a
	// transmission failed because of a timeout, before AfterAttempt.
	//
	// When Client fires AfterAttemptTimeout, the attempt's raw outcome
	// holds the timeout error, and its timeout counter has been
	// incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after every
	// transmission, before the raw outcome is resolved.
	//
	// When Client fires AfterAttempt, the attempt's raw outcome is
	// set.
	AfterAttempt
	// BeforeRetry identifies the event that occurs when the raw
	// outcome has been resolved to a retry, before the retry wait.
	BeforeRetry
	// AfterDelivery identifies the event that occurs after the
	// delivery callback has returned.
	//
	// When Client fires AfterDelivery, the call's outcome is complete.
	AfterDelivery
	// AfterAbandon identifies the event that occurs when the call ends
	// without delivery, either because it was cancelled or because
	// of a transport failure that is not a timeout.
	AfterAbandon
	// AfterCallEnd identifies the event that occurs after the call
	// ends, regardless of how.
	AfterCallEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeCall",
	"BeforeAttempt",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"BeforeRetry",
	"AfterDelivery",
	"AfterAbandon",
	"AfterCallEnd",
}

// Events returns a slice containing all events which can occur during
// a call executed by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeCall,
		BeforeAttempt,
		AfterAttemptTimeout,
		AfterAttempt,
		BeforeRetry,
		AfterDelivery,
		AfterAbandon,
		AfterCallEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
