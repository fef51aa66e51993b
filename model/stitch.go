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

package model

import "dirpx.dev/omx/apis"

// Stitch links a dynamically produced model to its owner and returns it,
// so factory methods can parent their results in a single expression:
//
//	func (t *Table) Row(i int) *Row {
//		return model.Stitch(t, newRow(i))
//	}
//
// Stitching is best-effort: a child that already has a parent, equals
// the owner, or would violate the tree contract is returned unlinked.
// Use Attach when the composition error matters.
func Stitch[T apis.Parentable](owner apis.Parentable, child T) T {
	if isNilRef(owner) || isNilRef(child) {
		return child
	}
	if sameModel(owner, child) {
		return child
	}
	cb := baseOf(child)
	if cb == nil || cb.parent != nil {
		return child
	}
	_ = Attach(owner, "", child)
	return child
}
