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

// Resolver resolves entry-point names within one bound scope.
// Typical device chain: DeviceStrategy -> InstanceStrategy.
type Resolver interface {
	// Resolve returns the function pointer for name, or 0 if unavailable.
	Resolve(name string) Proc
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(name string) Proc

// Resolve calls f. A nil f resolves nothing.
func (f ResolverFunc) Resolve(name string) Proc {
	if f == nil {
		return 0
	}
	return f(name)
}
