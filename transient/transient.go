// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the kind of a transport error.
type Category int

const (
	// Not indicates a nil error, or an error in none of the other
	// categories.
	Not Category = iota
	// Timeout indicates a client-side timeout: the error, or one of
	// its wrapped causes, has a Timeout method reporting true. This
	// includes context.DeadlineExceeded and syscall.ETIMEDOUT.
	Timeout
	// Canceled indicates the transmission was aborted because its
	// context was cancelled.
	Canceled
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED).
	ConnRefused
	// ConnReset indicates the remote host reset a previously active
	// connection (syscall.ECONNRESET).
	ConnReset
)

var categoryNames = []string{"Not", "Timeout", "Canceled", "ConnRefused", "ConnReset"}

// String returns the name of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(?)"
	}
	return categoryNames[c]
}

// Categorize returns the category of err. Timeout takes precedence over
// every other category.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t hasTimeout
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	if errors.Is(err, context.Canceled) {
		return Canceled
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}

// IsTimeout is shorthand for Categorize(err) == Timeout.
func IsTimeout(err error) bool {
	return Categorize(err) == Timeout
}

type hasTimeout interface {
	Timeout() bool
}
