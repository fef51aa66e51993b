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

// Package omx provides a minimal object-modelling base layer for testing
// frameworks.
//
// omx lets consumers build hierarchical trees of named "model" objects,
// such as page-object models or API-object models, where each object
// automatically knows its parent. The result is that every model can
// describe its own position for logs and error messages: a dotted path
// ("login.form.save"), a prose trail ("'save' in 'form' in 'login'"),
// and a kind label for the type it belongs to ("pages.LoginPage").
//
// # Modelling
//
// The core construct lives in the model subpackage. Embed model.Base in a
// struct and construct it with a mandatory, human-readable name:
//
//	type LoginPage struct {
//		*model.Base
//
//		Username *Field
//		Password *Field
//	}
//
//	page := &LoginPage{
//		Base:     model.Must("login"),
//		Username: &Field{Base: model.Must("username")},
//		Password: &Field{Base: model.Must("password")},
//	}
//
// Construction fails (with a *model.ValidationError) when the name is
// empty; naming is never optional and never inferred.
//
// Go has no attribute-assignment hook, so the parent link is captured at
// composition points instead. Three operations cover the composition
// styles in practice, and all of them are re-exported here at the root:
//
//   - Bind(root) walks the declared struct fields of a model
//     reflectively and stitches every contained model to its container.
//     One call after the composite literal above links both fields; the
//     walk descends into nested models, slices, arrays, maps and
//     embedded layers, so deeply declared trees need nothing else.
//
//   - Attach(parent, attr, child) records a single link explicitly, for
//     models composed incrementally after construction.
//
//   - Stitch(owner, child) links a dynamically produced model (for
//     example the result of a Row(i) factory method) to its owner and
//     returns the child, so factories stay one-liners.
//
// The parent link is write-once: the first composition wins, and moving
// a model under a different parent, adopting itself, or closing a
// containment cycle fails with a *model.StructuralError. Assigning
// non-model values is never intercepted and never fails.
//
// # Kind labels
//
// Besides its instance name, every model type has a kind label used in
// diagnostics ("pages.LoginPage"). Resolution is configurable through
// four cooperating pieces:
//
//   - apis.Policy holds the normalization rules: how many container
//     layers to peel, whether builtin types are labelled, which side of
//     a map counts.
//
//   - apis.Registry is an explicit table from Go types to hand-chosen
//     labels, filled once at startup via RegisterKind.
//
//   - apis.Resolver is the read side. The stock resolver asks the value
//     itself first (apis.KindNamer), then the registry, and finally
//     derives a "pkg.Type" label by reflection.
//
//   - apis.Builder is the factory that assembles registry and resolver
//     for a policy; replaceable when a binary needs its own resolution
//     stack.
//
// The package keeps all four in one immutable snapshot behind an atomic
// pointer. Reading a label never locks:
//
//	kind := omx.Kind(obj)
//	kind = omx.KindType(reflect.TypeOf(obj))
//	info := omx.Describe(obj) // label plus KindDescription, when provided
//
// # Reconfiguring the snapshot
//
// Kind, KindType, Describe, Policy, Registry, Resolver and Builder read
// the current snapshot and are safe everywhere. The Set family mutates
// it: each call takes a short build lock, derives a complete new
// snapshot, and publishes it with one atomic swap, so a reader observes
// either the old state or the new one and never a mix.
//
//   - SetPolicy installs new normalization rules and rebuilds the
//     registry and resolver through the current builder.
//
//   - SetBuilder swaps the factory and rebuilds through it immediately.
//
//   - SetExt stores an opaque payload that omx only forwards to the
//     builder; ExtAs reads it back. Custom builders use it to carry
//     their own configuration.
//
//   - SetRegistry and SetResolver install a specific instance and pin
//     that layer: automatic rebuilds skip pinned layers until the
//     matching Unpin call releases them. Pinning is for setups that fix
//     one layer while the rest keeps evolving with the policy.
//
//   - SetAll replaces every component in one call; tests use it to
//     restore a known snapshot between cases.
//
// # Concurrency
//
// Label reads are wait-free atomic loads. Snapshot writes serialize on
// a mutex and publish with a single pointer swap.
//
// Tree construction is different: New, Attach, Bind and Stitch perform
// plain field writes and are single-threaded by contract. Callers that
// build overlapping trees from several goroutines must synchronize;
// reading a finished tree (Name, Parent, Path, Chain) is safe anywhere.
//
// # Typical setup
//
// A model-definition package registers its important types once, builds
// its trees, and lets diagnostics do the rest:
//
//	omx.RegisterKind(reflect.TypeOf(LoginPage{}), "pages.login")
//
//	page := NewLoginPage() // composite literal + one Bind call
//	slog.Info("opened", "model", page) // logs kind, name and path
//
// Declarative trees can also be loaded from YAML documents via the
// manifest subpackage, which builds the same model.Base-backed nodes.
//
// # Scope
//
// omx solves exactly one job: give every model object a mandatory
// human-readable name, an automatically stitched parent, and a stable
// way to describe its position and kind. Selectors, protocols, runners
// and assertions belong to the frameworks built on top.
package omx
