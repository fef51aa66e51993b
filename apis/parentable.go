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

package apis

// Parentable is a named node in a model composition tree.
//
// A Parentable carries a human-readable instance name, supplied
// explicitly at construction, and a navigational back-link to the model
// that contains it. The back-link implies no ownership: it exists so
// that logs and error messages can describe where in a model tree an
// object lives.
//
// Implementations are obtained by embedding model.Base in a user struct;
// the embedded base provides every method of this interface. The parent
// link is written at most once, at the moment the instance is first
// composed into another model (see model.Attach, model.Bind and
// model.Stitch). A Parentable with no parent is a root.
//
// Values of this interface are passed around as the identities of model
// objects: whatever pointer a caller composes with is the pointer
// returned by Parent() on the child side.
type Parentable interface {
	// Name returns the instance name supplied at construction. Instances
	// that bypassed construction report a fixed unnamed label instead.
	Name() string

	// Parent returns the containing model, or nil for a root.
	Parent() Parentable

	// Path returns the dotted path from the root to this instance,
	// built from instance names ("root.sub.leaf").
	Path() string
}
