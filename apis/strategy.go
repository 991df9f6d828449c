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

// Strategy is one resolution step bound to a scope token. A Resolver chains
// strategies in order (e.g., Device -> Instance).
type Strategy interface {
	// TryResolve returns (proc, true) if the entry was found; otherwise
	// (0, false) to fall through to the next strategy.
	TryResolve(name string) (proc Proc, handled bool)
}
