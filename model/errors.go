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

import "fmt"

// ValidationError reports a model construction rejected at the naming gate.
// It surfaces immediately to the caller; nothing in this package retries or
// recovers from it.
type ValidationError struct {
	// Op is the failing operation, e.g. "new".
	Op string
	// Reason describes what was rejected.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("omx(model): %s: %s", e.Op, e.Reason)
}

// StructuralError reports a composition that would corrupt the model tree:
// moving a model under a second parent, self-adoption, or a stitch that
// would close a containment cycle.
type StructuralError struct {
	// Op is the failing operation: "attach", "bind" or "stitch".
	Op string
	// Child is the path of the model being stitched, when known.
	Child string
	// Parent is the path of the attempted parent, when known.
	Parent string
	// Reason describes the violation.
	Reason string
}

func (e *StructuralError) Error() string {
	switch {
	case e.Child != "" && e.Parent != "":
		return fmt.Sprintf("omx(model): %s %q under %q: %s", e.Op, e.Child, e.Parent, e.Reason)
	case e.Child != "":
		return fmt.Sprintf("omx(model): %s %q: %s", e.Op, e.Child, e.Reason)
	default:
		return fmt.Sprintf("omx(model): %s: %s", e.Op, e.Reason)
	}
}
