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

package strategy

import (
	"reflect"

	"dirpx.dev/omx/apis"
)

// NewNamerStrategy creates the apis.Strategy for self-labelling models: a
// value that implements apis.KindNamer answers for itself before any lookup
// or reflection runs. This is the zero-cost head of the chain.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

type namerStrategy struct{}

var _ apis.Strategy = (*namerStrategy)(nil)

// TryResolve returns v's own ModelKind when it declares one. An empty
// ModelKind defers to the rest of the chain, so a model can embed a
// KindNamer implementation without committing to a label.
func (*namerStrategy) TryResolve(v any, _ apis.Policy) (string, bool) {
	n, ok := v.(apis.KindNamer)
	if !ok {
		return "", false
	}
	kind := n.ModelKind()
	return kind, kind != ""
}

// TryResolveType always misses: self-labelling needs an instance to ask.
func (*namerStrategy) TryResolveType(_ reflect.Type, _ apis.Policy) (string, bool) {
	return "", false
}
