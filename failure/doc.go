// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package failure composes the structured error payload delivered to a
// call's error callback.
package failure
