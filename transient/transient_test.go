// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, Not, Categorize(nil))
	assert.Equal(t, Not, Categorize(errors.New("foo")))
	assert.Equal(t, Not, Categorize(wrapper{errors.New("bar")}))
	assert.Equal(t, Timeout, Categorize(syscall.ETIMEDOUT))
	assert.Equal(t, Timeout, Categorize(context.DeadlineExceeded))
	assert.Equal(t, Timeout, Categorize(&url.Error{Op: "Get", Err: context.DeadlineExceeded}))
	assert.Equal(t, Timeout, Categorize(fmt.Errorf("attempt: %w", syscall.ETIMEDOUT)))
	assert.Equal(t, Timeout, Categorize(wrapper{timeoutWrapper{true, syscall.ECONNREFUSED}}))
	assert.Equal(t, Canceled, Categorize(context.Canceled))
	assert.Equal(t, Canceled, Categorize(&url.Error{Op: "Get", Err: context.Canceled}))
	assert.Equal(t, ConnReset, Categorize(wrapper{syscall.ECONNRESET}))
	assert.Equal(t, ConnReset, Categorize(timeoutWrapper{false, syscall.ECONNRESET}))
	assert.Equal(t, ConnRefused, Categorize(&url.Error{Err: wrapper{syscall.ECONNREFUSED}}))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(syscall.ETIMEDOUT))
	assert.False(t, IsTimeout(syscall.ECONNRESET))
	assert.False(t, IsTimeout(nil))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Not", Not.String())
	assert.Equal(t, "Timeout", Timeout.String())
	assert.Equal(t, "Canceled", Canceled.String())
	assert.Equal(t, "ConnRefused", ConnRefused.String())
	assert.Equal(t, "ConnReset", ConnReset.String())
	assert.Equal(t, "Category(?)", Category(99).String())
}

type wrapper struct {
	wrappedError error
}

func (err wrapper) Error() string {
	return fmt.Sprintf("wrapper - wraps %v", err.wrappedError)
}

func (err wrapper) Unwrap() error {
	return err.wrappedError
}

type timeoutWrapper struct {
	timeout      bool
	wrappedError error
}

func (err timeoutWrapper) Error() string {
	return fmt.Sprintf("timeoutWrapper - timeout %t, wraps %v", err.timeout, err.wrappedError)
}

func (err timeoutWrapper) Timeout() bool {
	return err.timeout
}

func (err timeoutWrapper) Unwrap() error {
	return err.wrappedError
}
