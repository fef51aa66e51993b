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

// Package model provides the embeddable base for named, parent-aware model
// objects. Embed Base in a struct, construct it with New or Must, and
// compose trees with Attach, Bind or Stitch; every instance then knows its
// dotted path for logging and error messages.
package model

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"dirpx.dev/omx/apis"
	"dirpx.dev/omx/path"
	"dirpx.dev/omx/policy"
	uref "dirpx.dev/omx/utils/reflect"
)

// Unnamed is the label shown in paths and diagnostics for instances whose
// base was never constructed (zero value). Constructors remain the only
// naming gate: New rejects empty names, it never falls back to this label.
const Unnamed = "UNKNOWN"

// maxAscent bounds every parent-chain walk. The tree invariant makes the
// chains finite; the bound turns a contract-violating cycle into truncated
// output instead of a hang.
const maxAscent = 1024

// Base carries the name and the parent link of a model instance. It is
// meant to be embedded (by value or pointer) in user structs; the embedded
// base provides the full apis.Parentable contract.
//
// Tree construction (New/Attach/Bind/Stitch) is single-threaded by
// contract: parent links are plain writes, and callers building the same
// tree from several goroutines must synchronize. All read accessors are
// safe once construction is done. A Base must not be copied after it has
// been composed; identity is its address.
type Base struct {
	name   string
	attr   string
	parent apis.Parentable
	// self is the outer instance this base is embedded in, captured on the
	// first composition that passes it through the package API.
	self apis.Parentable
}

var (
	_ apis.Parentable = (*Base)(nil)
	_ fmt.Stringer    = (*Base)(nil)
	_ fmt.GoStringer  = (*Base)(nil)
	_ slog.LogValuer  = (*Base)(nil)
)

// Option configures a Base during construction.
type Option func(*options)

type options struct {
	parent apis.Parentable
	attr   string
}

// WithParent stitches the new instance under p immediately (inline
// modelling). The explicit parent wins over any later Bind walk.
func WithParent(p apis.Parentable) Option {
	return func(o *options) { o.parent = p }
}

// WithAttr records the attribute slot the instance is stored under on its
// parent. Diagnostic only; paths are built from names.
func WithAttr(attr string) Option {
	return func(o *options) { o.attr = attr }
}

// New constructs a Base with the mandatory instance name. An empty name is
// rejected with a *ValidationError; a WithParent stitch that violates the
// tree contract is rejected with a *StructuralError.
func New(name string, opts ...Option) (*Base, error) {
	if name == "" {
		return nil, &ValidationError{Op: "new", Reason: "model name must not be empty"}
	}
	var oc options
	for _, o := range opts {
		if o != nil {
			o(&oc)
		}
	}
	b := &Base{name: name, attr: oc.attr}
	if !isNilRef(oc.parent) {
		if err := Attach(oc.parent, oc.attr, b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Must is New for declarative composition literals; it panics on error.
func Must(name string, opts ...Option) *Base {
	b, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Attach records parent as the container of child, stored under the
// attribute slot attr. It is the explicit form of composition interception:
// call it wherever a model is placed inside another model.
//
// The parent link is write-once. Re-attaching a child to the parent it
// already has is an idempotent no-op (the first attr is kept); attaching it
// to a different parent, to itself, or to one of its own descendants fails
// with a *StructuralError. A nil parent or child is a no-op.
func Attach(parent apis.Parentable, attr string, child apis.Parentable) error {
	if isNilRef(parent) || isNilRef(child) {
		return nil
	}
	cb := baseOf(child)
	if cb == nil {
		return &StructuralError{
			Op:     "attach",
			Child:  nameOf(child),
			Parent: pathOf(parent),
			Reason: "child does not embed model.Base",
		}
	}
	if sameModel(parent, child) {
		return &StructuralError{
			Op:     "attach",
			Child:  cb.Path(),
			Reason: "a model cannot adopt itself",
		}
	}
	if cb.parent != nil {
		if sameModel(cb.parent, parent) {
			cb.captureSelf(child)
			return nil
		}
		return &StructuralError{
			Op:     "attach",
			Child:  cb.Path(),
			Parent: pathOf(parent),
			Reason: "model is already parented",
		}
	}
	// Reject stitches that would make child its own ancestor.
	for a, n := parent, 0; !isNilRef(a) && n < maxAscent; n++ {
		if sameModel(a, child) {
			return &StructuralError{
				Op:     "attach",
				Child:  cb.Path(),
				Parent: pathOf(parent),
				Reason: "stitch would close a containment cycle",
			}
		}
		a = parentOf(a)
	}

	cb.parent = parent
	if cb.attr == "" {
		cb.attr = attr
	}
	cb.captureSelf(child)
	if pb := baseOf(parent); pb != nil {
		pb.captureSelf(parent)
	}
	return nil
}

// Name returns the instance name. A zero-value base that bypassed
// construction reports the Unnamed label.
func (b *Base) Name() string {
	if b == nil || b.name == "" {
		return Unnamed
	}
	return b.name
}

// Parent returns the containing model as it was composed, or nil for a
// root. The link is navigational only.
func (b *Base) Parent() apis.Parentable {
	if b == nil {
		return nil
	}
	return b.parent
}

// Attr returns the attribute slot recorded at stitch time, or "" when the
// instance was composed without one.
func (b *Base) Attr() string {
	if b == nil {
		return ""
	}
	return b.attr
}

// Path returns the dotted path from the root to this instance, built from
// instance names: the root's name alone, or the parent's path followed by
// this instance's own name.
func (b *Base) Path() string {
	if b == nil {
		return Unnamed
	}
	segs := []string{b.Name()}
	for p, n := b.parent, 0; !isNilRef(p) && n < maxAscent; n++ {
		segs = append(segs, nameOf(p))
		p = parentOf(p)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return path.Join(segs...)
}

// Chain returns the ancestors of this instance in increasing distance:
// parent first, root last. A root returns nil.
func (b *Base) Chain() []apis.Parentable {
	if b == nil {
		return nil
	}
	var out []apis.Parentable
	for p, n := b.parent, 0; !isNilRef(p) && n < maxAscent; n++ {
		out = append(out, p)
		p = parentOf(p)
	}
	return out
}

// Depth returns the number of ancestors; a root has depth 0.
func (b *Base) Depth() int {
	if b == nil {
		return 0
	}
	d := 0
	for p := b.parent; !isNilRef(p) && d < maxAscent; d++ {
		p = parentOf(p)
	}
	return d
}

// Root returns the outermost model of this instance's tree; an instance
// with no parent is its own root.
func (b *Base) Root() apis.Parentable {
	if b == nil {
		return nil
	}
	last := b.selfOrBase()
	for p, n := b.parent, 0; !isNilRef(p) && n < maxAscent; n++ {
		last = p
		p = parentOf(p)
	}
	return last
}

// String renders the containment trail for prose logs:
// 'leaf' in 'sub' in 'root'.
func (b *Base) String() string {
	if b == nil {
		return "'" + Unnamed + "'"
	}
	var sb strings.Builder
	sb.WriteString("'")
	sb.WriteString(b.Name())
	sb.WriteString("'")
	for p, n := b.parent, 0; !isNilRef(p) && n < maxAscent; n++ {
		sb.WriteString(" in '")
		sb.WriteString(nameOf(p))
		sb.WriteString("'")
		p = parentOf(p)
	}
	return sb.String()
}

// GoString renders a constructor-shaped label, e.g. pages.LoginPage(name="login").
// The type label is resolved from the composed instance; a base that was
// never composed labels itself.
func (b *Base) GoString() string {
	if b == nil {
		return fmt.Sprintf("model.Base(name=%q)", Unnamed)
	}
	kind := uref.LabelFor(b.selfOrBase(), policy.Default())
	return fmt.Sprintf("%s(name=%q)", kind, b.Name())
}

// LogValue exposes the instance to log/slog as a group of kind, name and
// path attributes.
func (b *Base) LogValue() slog.Value {
	if b == nil {
		return slog.GroupValue(slog.String("name", Unnamed))
	}
	return slog.GroupValue(
		slog.String("kind", uref.LabelFor(b.selfOrBase(), policy.Default())),
		slog.String("name", b.Name()),
		slog.String("path", b.Path()),
	)
}

// linker is the internal hook that maps any embedding struct back to its
// Base. Only bases created inside this package satisfy it.
type linker interface {
	base() *Base
}

func (b *Base) base() *Base { return b }

// baseOf returns the Base backing p, or nil for foreign Parentable
// implementations. Callers must nil-check p first (see isNilRef).
func baseOf(p apis.Parentable) *Base {
	if l, ok := p.(linker); ok {
		return l.base()
	}
	return nil
}

// sameModel reports whether a and b are the same instance. Identity is the
// address of the backing Base; foreign implementations compare by
// interface identity.
func sameModel(a, b apis.Parentable) bool {
	ab, bb := baseOf(a), baseOf(b)
	if ab != nil && bb != nil {
		return ab == bb
	}
	return a == b
}

// parentOf ascends one containment step without re-entering user code for
// Base-backed models.
func parentOf(p apis.Parentable) apis.Parentable {
	if lb := baseOf(p); lb != nil {
		return lb.parent
	}
	return p.Parent()
}

// nameOf returns a display name for any Parentable, never empty.
func nameOf(p apis.Parentable) string {
	if isNilRef(p) {
		return Unnamed
	}
	if lb := baseOf(p); lb != nil {
		return lb.Name()
	}
	if n := p.Name(); n != "" {
		return n
	}
	return Unnamed
}

// pathOf returns the dotted path for any Parentable, tolerating nil.
func pathOf(p apis.Parentable) string {
	if isNilRef(p) {
		return ""
	}
	return p.Path()
}

// isNilRef reports whether p is nil, including typed-nil pointers boxed in
// the interface.
func isNilRef(p apis.Parentable) bool {
	if p == nil {
		return true
	}
	rv := reflect.ValueOf(p)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (b *Base) captureSelf(outer apis.Parentable) {
	if b.self == nil && outer != nil {
		b.self = outer
	}
}

func (b *Base) selfOrBase() apis.Parentable {
	if b.self != nil {
		return b.self
	}
	return b
}
