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
	"dirpx.dev/pfx/apis"
)

// NewLoaderStrategy creates an apis.Strategy over the bootstrap resolver.
// The context token is always 0.
func NewLoaderStrategy(bootstrap apis.ResolveFunc) apis.Strategy {
	return &loaderStrategy{get: bootstrap}
}

// loaderStrategy resolves the small loader-scope set used to bootstrap
// enumeration, including the entry that resolves instance-scope names.
type loaderStrategy struct {
	get apis.ResolveFunc
}

// Ensure loaderStrategy implements apis.Strategy.
var _ apis.Strategy = (*loaderStrategy)(nil)

// TryResolve calls the bootstrap resolver with a null context.
func (s *loaderStrategy) TryResolve(name string) (apis.Proc, bool) {
	return try(s.get, 0, name)
}

// try calls get and reports whether it produced a pointer.
func try(get apis.ResolveFunc, ctx apis.Handle, name string) (apis.Proc, bool) {
	if get == nil || name == "" {
		return 0, false
	}
	p := get(ctx, name)
	return p, p.Valid()
}
