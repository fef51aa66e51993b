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

package omx

import (
	"dirpx.dev/omx/apis"
	"dirpx.dev/omx/model"
)

// The modelling surface re-exported at the root, so consumers that only
// compose trees import a single package. Semantics live in the model
// package; these wrappers add nothing.

// New constructs a model base with the mandatory instance name.
// See model.New.
func New(name string, opts ...model.Option) (*model.Base, error) {
	return model.New(name, opts...)
}

// Must is New for declarative composition literals; it panics on error.
// See model.Must.
func Must(name string, opts ...model.Option) *model.Base {
	return model.Must(name, opts...)
}

// Attach records parent as the container of child under the attribute slot
// attr. See model.Attach.
func Attach(parent apis.Parentable, attr string, child apis.Parentable) error {
	return model.Attach(parent, attr, child)
}

// Bind walks root's struct fields and stitches every reachable model to its
// container. See model.Bind.
func Bind(root apis.Parentable, opts ...model.BindOption) error {
	return model.Bind(root, opts...)
}

// Stitch links a dynamically produced model to its owner and returns it.
// See model.Stitch.
func Stitch[T apis.Parentable](owner apis.Parentable, child T) T {
	return model.Stitch(owner, child)
}
