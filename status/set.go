// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package status

import (
	"sort"
	"strconv"
	"strings"
)

// A Set is a collection of codes, used to configure which codes count
// as success and which trigger a retry.
//
// A Set must not be modified after it has been constructed. Any number
// of goroutines may read the same Set concurrently. The nil Set is
// empty.
type Set struct {
	m map[Code]struct{}
}

// NewSet returns a set containing the given codes.
func NewSet(codes ...Code) Set {
	m := make(map[Code]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return Set{m: m}
}

// Ints returns a set containing the classification of each raw
// integer.
func Ints(codes ...int) Set {
	cs := make([]Code, len(codes))
	for i, c := range codes {
		cs[i] = Classify(c)
	}
	return NewSet(cs...)
}

// DefaultSuccess is the set of codes treated as success when no other
// configuration is given.
var DefaultSuccess = NewSet(OK, Created, Accepted, NonAuthoritativeInfo,
	NoContent, ResetContent, PartialContent)

// Contains reports whether c is in s.
func (s Set) Contains(c Code) bool {
	_, ok := s.m[c]
	return ok
}

// ContainsAll reports whether every one of cs is in s. It returns true
// if cs is empty.
func (s Set) ContainsAll(cs ...Code) bool {
	for _, c := range cs {
		if !s.Contains(c) {
			return false
		}
	}
	return true
}

// Len returns the number of codes in s.
func (s Set) Len() int {
	return len(s.m)
}

// Empty reports whether s contains no codes.
func (s Set) Empty() bool {
	return len(s.m) == 0
}

// Codes returns the codes in s in ascending order.
func (s Set) Codes() []Code {
	cs := make([]Code, 0, len(s.m))
	for c := range s.m {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
	return cs
}

// Union returns a new set containing the codes of s and t.
func (s Set) Union(t Set) Set {
	m := make(map[Code]struct{}, len(s.m)+len(t.m))
	for c := range s.m {
		m[c] = struct{}{}
	}
	for c := range t.m {
		m[c] = struct{}{}
	}
	return Set{m: m}
}

// String returns the codes of s as a bracketed list of integers.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range s.Codes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	b.WriteByte(']')
	return b.String()
}
