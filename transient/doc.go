// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient categorizes transport errors. The response
// dispatcher uses it to tell a transport timeout, which may be retried
// and is reported to the caller, from every other statusless failure,
// which is logged and dropped.
package transient
