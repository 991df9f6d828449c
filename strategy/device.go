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

// NewDeviceStrategy creates an apis.Strategy that resolves names against
// device through get, the "get device proc" entry point. get must itself
// have been resolved through the instance scope.
func NewDeviceStrategy(get apis.ResolveFunc, device apis.Handle) apis.Strategy {
	return &deviceStrategy{get: get, device: device}
}

// deviceStrategy is the fast path: entries resolved here dispatch straight
// into the driver without the loader trampoline.
type deviceStrategy struct {
	get    apis.ResolveFunc
	device apis.Handle
}

// Ensure deviceStrategy implements apis.Strategy.
var _ apis.Strategy = (*deviceStrategy)(nil)

// TryResolve calls the device getter with the bound device.
// A null device never resolves.
func (s *deviceStrategy) TryResolve(name string) (apis.Proc, bool) {
	if s.device == 0 {
		return 0, false
	}
	return try(s.get, s.device, name)
}
