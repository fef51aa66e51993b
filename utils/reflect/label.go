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

package reflect

import (
	"path"
	"reflect"
	"strings"

	"dirpx.dev/omx/apis"
)

// TypeLabel computes a stable "pkg.Type" kind label for t: Normalize to the
// nearest named inner type, strip generic instantiation parameters, and
// prefix the base package name. Builtin/no-package types yield "" unless
// pol.IncludeBuiltins is set. Returns "" when no named type is reachable.
//
// The computation is pure; callers that resolve the same types repeatedly
// should memoize (the reflect strategy does).
func TypeLabel(t reflect.Type, pol apis.Policy) string {
	base, err := Normalize(t, pol)
	if err != nil || base == nil {
		return ""
	}

	label := StripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		label = path.Base(p) + "." + label
	} else if !pol.IncludeBuiltins {
		// Hide builtin/no-package labels if requested.
		label = ""
	}
	return label
}

// LabelFor is shorthand for TypeLabel on v's dynamic type.
// A nil v yields "".
func LabelFor(v any, pol apis.Policy) string {
	if v == nil {
		return ""
	}
	return TypeLabel(reflect.TypeOf(v), pol)
}

// StripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func StripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
