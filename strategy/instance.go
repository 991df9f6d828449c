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

// NewInstanceStrategy creates an apis.Strategy that resolves names against
// instance through get, the resolved "get instance proc" entry point.
func NewInstanceStrategy(get apis.ResolveFunc, instance apis.Handle) apis.Strategy {
	return &instanceStrategy{get: get, instance: instance}
}

// instanceStrategy binds an instance handle to the instance getter.
// A zero instance is passed through: the getter accepts a null instance for
// loader-scope names, so the strategy works before any device exists.
type instanceStrategy struct {
	get      apis.ResolveFunc
	instance apis.Handle
}

// Ensure instanceStrategy implements apis.Strategy.
var _ apis.Strategy = (*instanceStrategy)(nil)

// TryResolve calls the instance getter with the bound instance.
func (s *instanceStrategy) TryResolve(name string) (apis.Proc, bool) {
	return try(s.get, s.instance, name)
}
