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

// Package manifest builds model trees from declarative YAML documents.
//
// A manifest is the dynamic counterpart of declaring model structs in
// code: test suites that generate their object models (or share them
// across languages) describe the tree in a document, and Build produces
// the same parent-stitched, path-aware nodes the model package gives
// statically declared types.
//
//	models:
//	  - name: login
//	    kind: pages.login
//	    children:
//	      - name: username
//	      - name: password
//
// Names are mandatory for every node; kinds are optional type-level
// labels surfaced through the standard resolution chain.
package manifest

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"dirpx.dev/omx/model"
	"dirpx.dev/omx/path"
)

// Doc is the root structure of a modelling manifest.
type Doc struct {
	// Models lists the root model definitions.
	Models []Def `yaml:"models"`
}

// Def declares a single model node.
type Def struct {
	// Name is the mandatory instance name, a single path segment.
	Name string `yaml:"name"`
	// Kind optionally fixes the type-level kind label for this node.
	Kind string `yaml:"kind"`
	// Children are the nested model definitions.
	Children []Def `yaml:"children"`
}

// Parse decodes a manifest document.
func Parse(data []byte) (*Doc, error) {
	var d Doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("omx(manifest): parse: %w", err)
	}
	return &d, nil
}

// Load reads and parses a manifest file from fsys.
func Load(fsys fs.FS, name string) (*Doc, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("omx(manifest): read %s: %w", name, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("omx(manifest): parse %s: %w", name, err)
	}
	return d, nil
}

// Glob loads every manifest matching pattern (fs.Glob order, which is
// sorted) and merges their model lists into a single document.
func Glob(fsys fs.FS, pattern string) (*Doc, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("omx(manifest): glob %s: %w", pattern, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("omx(manifest): glob %s: no manifests found", pattern)
	}
	merged := &Doc{}
	for _, name := range names {
		d, err := Load(fsys, name)
		if err != nil {
			return nil, err
		}
		merged.Models = append(merged.Models, d.Models...)
	}
	return merged, nil
}

// Node is a built manifest node: a model.Base-backed instance plus the
// document metadata and the built children.
type Node struct {
	model.Base

	// Kind is the optional kind label carried by the document.
	Kind string
	// Children holds the built child nodes, in document order.
	Children []*Node
}

// ModelKind exposes the document's kind label through the standard
// resolution fast path. Empty when the document carried none, deferring
// to the registry and reflect strategies.
func (n *Node) ModelKind() string {
	return n.Kind
}

// Find resolves a dotted path of descendant names relative to n:
// login.Find("form.save") returns the save node under form.
func (n *Node) Find(p string) (*Node, bool) {
	trail, err := path.Parse(p)
	if err != nil {
		return nil, false
	}
	cur := n
	for _, seg := range trail {
		next := cur.child(seg)
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (n *Node) child(name string) *Node {
	for _, c := range n.Children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Forest is the set of root nodes built from one document.
type Forest []*Node

// Find resolves an absolute dotted path whose first segment is a root
// name: f.Find("login.form.save").
func (f Forest) Find(p string) (*Node, bool) {
	trail, err := path.Parse(p)
	if err != nil {
		return nil, false
	}
	for _, root := range f {
		if root.Name() != trail[0] {
			continue
		}
		if len(trail) == 1 {
			return root, true
		}
		return root.Find(trail[1:].String())
	}
	return nil, false
}

// Build constructs the model tree the document describes. Every node is
// named via the model constructor, so a missing or empty name anywhere
// fails with a *model.ValidationError carrying the document position
// ("models[0].children[1]"); duplicate names among siblings fail with a
// *model.StructuralError, since they would make dotted lookups ambiguous.
func (d *Doc) Build() (Forest, error) {
	roots := make(Forest, 0, len(d.Models))
	seen := make(map[string]bool, len(d.Models))
	for i, def := range d.Models {
		pos := fmt.Sprintf("models[%d]", i)
		node, err := build(def, nil, pos, "")
		if err != nil {
			return nil, err
		}
		if seen[node.Name()] {
			return nil, fmt.Errorf("omx(manifest): %s: %w", pos, &model.StructuralError{
				Op:     "build",
				Child:  node.Name(),
				Reason: "duplicate root name",
			})
		}
		seen[node.Name()] = true
		roots = append(roots, node)
	}
	return roots, nil
}

// build constructs one node and its subtree, stitching children as it
// descends. pos is the document breadcrumb used in error context; slot is
// the diagnostic attribute recorded on the parent link.
func build(def Def, parent *Node, pos, slot string) (*Node, error) {
	base, err := model.New(def.Name)
	if err != nil {
		return nil, fmt.Errorf("omx(manifest): %s: %w", pos, err)
	}
	if verr := path.Validate(def.Name); verr != nil {
		// Find needs names to be single path segments.
		return nil, fmt.Errorf("omx(manifest): %s: %w", pos, &model.ValidationError{
			Op:     "build",
			Reason: fmt.Sprintf("name %q must be a single path segment", def.Name),
		})
	}

	node := &Node{Base: *base, Kind: def.Kind}
	if parent != nil {
		if err := model.Attach(parent, slot, node); err != nil {
			return nil, fmt.Errorf("omx(manifest): %s: %w", pos, err)
		}
	}

	seen := make(map[string]bool, len(def.Children))
	for i, cdef := range def.Children {
		cslot := fmt.Sprintf("children[%d]", i)
		cpos := pos + "." + cslot
		child, err := build(cdef, node, cpos, cslot)
		if err != nil {
			return nil, err
		}
		if seen[child.Name()] {
			return nil, fmt.Errorf("omx(manifest): %s: %w", cpos, &model.StructuralError{
				Op:     "build",
				Child:  child.Path(),
				Parent: node.Path(),
				Reason: "duplicate sibling name",
			})
		}
		seen[child.Name()] = true
		node.Children = append(node.Children, child)
	}
	return node, nil
}
