/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package path provides helpers for the dotted paths that identify model
// instances inside a composition tree ("root.sub.leaf"). The separator is
// part of the path contract, not a configuration knob.
package path

import (
	"errors"
	"fmt"
	"strings"
)

// Sep separates path segments.
const Sep = "."

var (
	// ErrEmpty is returned when an empty path is parsed.
	ErrEmpty = errors.New("omx(path): empty path")
	// ErrEmptySegment is returned when a path contains an empty segment
	// or a segment-to-validate is empty.
	ErrEmptySegment = errors.New("omx(path): empty path segment")
)

// Join concatenates segments with Sep. Empty segments are dropped so that
// partially built trails never produce ".." runs.
func Join(segs ...string) string {
	var sb strings.Builder
	for _, s := range segs {
		if s == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(Sep)
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// Split cuts a path into its segments. An empty path yields nil.
func Split(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, Sep)
}

// Validate checks that seg is usable as a single path segment:
// non-empty and free of the separator.
func Validate(seg string) error {
	if seg == "" {
		return ErrEmptySegment
	}
	if strings.Contains(seg, Sep) {
		return fmt.Errorf("omx(path): segment %q contains separator %q", seg, Sep)
	}
	return nil
}

// Trail is a parsed path, ordered root first.
type Trail []string

// Parse splits a dotted path into a Trail, rejecting empty paths and
// empty segments ("a..b").
func Parse(p string) (Trail, error) {
	if p == "" {
		return nil, ErrEmpty
	}
	segs := strings.Split(p, Sep)
	for _, s := range segs {
		if s == "" {
			return nil, ErrEmptySegment
		}
	}
	return Trail(segs), nil
}

// String renders the trail back into its dotted form.
func (t Trail) String() string {
	return strings.Join(t, Sep)
}

// Leaf returns the final segment, or "" for an empty trail.
func (t Trail) Leaf() string {
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}

// Parent returns the trail without its leaf. The parent of a root (or
// empty) trail is nil.
func (t Trail) Parent() Trail {
	if len(t) <= 1 {
		return nil
	}
	return t[:len(t)-1]
}
