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

// Builder assembles the kind-label machinery for a Policy. It runs
// whenever the subsystem is configured or reconfigured; the instances
// being replaced are offered so registrations or caches can be carried
// forward, and implementations are free to ignore them.
type Builder interface {
	// BuildRegistry returns the registry to use under pol. prev is the
	// registry being replaced, nil on first build, and may be mined for
	// entries. ext is an implementation-defined extension hook.
	BuildRegistry(pol Policy, prev Registry, ext any) Registry

	// BuildResolver returns the resolver to use under pol, answering from
	// reg. prev is the resolver being replaced, nil on first build.
	BuildResolver(pol Policy, reg Registry, prev Resolver, ext any) Resolver
}
