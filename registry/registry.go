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

package registry

import (
	"errors"
	"slices"
	"sync"

	"dirpx.dev/pfx/apis"
)

var (
	// ErrEmptyName is returned when an entry without a name is registered.
	ErrEmptyName = errors.New("pfx(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with a different scope, guard or signature.
	ErrConflictingRegistration = errors.New("pfx(registry): conflicting entry registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{index: make(map[string]int)}
}

// registry keeps entries in declaration order with a name index.
type registry struct {
	// mu guards entries and index.
	mu sync.RWMutex
	// entries holds registered entries; entries[i].Index == i.
	entries []apis.Entry
	// index maps a name to its position in entries.
	index map[string]int
	// byScope caches enabled entries per scope; rebuilt lazily.
	byScope [len(apis.Scopes)][]apis.Entry
	// dirty marks byScope as stale.
	dirty bool
}

// Register appends e and assigns its slot index.
// It is idempotent for an identical (name, scope, guard, signature, enabled) record.
func (r *registry) Register(e apis.Entry) error {
	if e.Name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[e.Name]; ok {
		old := r.entries[i]
		e.Index = old.Index
		if old == e {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	e.Index = len(r.entries)
	r.entries = append(r.entries, e)
	r.index[e.Name] = e.Index
	r.dirty = true
	return nil
}

// Lookup returns the entry registered under name.
func (r *registry) Lookup(name string) (apis.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return apis.Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a snapshot of every entry in declaration order.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// Scope returns the enabled entries of scope s in declaration order.
// The returned slice is shared and must not be modified.
func (r *registry) Scope(s apis.Scope) []apis.Entry {
	if int(s) >= len(apis.Scopes) {
		return nil
	}
	r.mu.RLock()
	if !r.dirty {
		out := r.byScope[s]
		r.mu.RUnlock()
		return out
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dirty {
		var split [len(apis.Scopes)][]apis.Entry
		for _, e := range r.entries {
			if e.Enabled && int(e.Scope) < len(split) {
				split[e.Scope] = append(split[e.Scope], e)
			}
		}
		r.byScope = split
		r.dirty = false
	}
	return r.byScope[s]
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.index = make(map[string]int)
	r.byScope = [len(apis.Scopes)][]apis.Entry{}
	r.dirty = false
}
