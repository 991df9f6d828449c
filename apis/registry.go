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

// Registry is the compiled feature-set membership table: every known entry
// point with its scope and the static outcome of its guard expression.
// Entries keep declaration order so population and diagnostics are
// deterministic.
type Registry interface {
	// Register appends e and assigns its slot index.
	// Re-registering an identical entry is a no-op; a different entry under
	// an existing name is rejected.
	Register(e Entry) error
	// Lookup returns the entry registered under name.
	Lookup(name string) (Entry, bool)
	// Entries returns every entry in declaration order.
	Entries() []Entry
	// Scope returns the enabled entries of scope s in declaration order.
	Scope(s Scope) []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is one record of the membership table.
type Entry struct {
	// Index is the slot offset of this entry in a global table.
	Index int
	// Name is the entry-point identifier, e.g. "vkCreateDevice".
	Name string
	// Scope is the resolution scope of the entry.
	Scope Scope
	// Guard is the feature-set expression that gates the entry.
	Guard string
	// Signature names the function-pointer type of the entry.
	Signature string
	// Enabled is the guard evaluated against the build configuration.
	Enabled bool
}
