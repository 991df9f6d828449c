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

// NewFuncStrategy wraps an arbitrary resolver callback bound to ctx.
// PopulateTable uses it for resolvers passed with WithInstanceResolver.
func NewFuncStrategy(fn apis.ResolveFunc, ctx apis.Handle) apis.Strategy {
	return funcStrategy{fn: fn, ctx: ctx}
}

type funcStrategy struct {
	fn  apis.ResolveFunc
	ctx apis.Handle
}

func (s funcStrategy) TryResolve(name string) (apis.Proc, bool) {
	return try(s.fn, s.ctx, name)
}
