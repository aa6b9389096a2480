// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package status classifies raw HTTP status codes into the closed Code
// enumeration used by the response dispatcher, and provides Set, the
// read-only collection type used to configure success and retry codes.
//
// Besides the standard HTTP codes, the enumeration contains two
// synthetic values which never appear on the wire: Undecodable, for a
// successful response whose body could not be decoded, and TimedOut,
// for a transport-level timeout which produced no response at all.
package status
