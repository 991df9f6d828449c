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

// Package table holds dispatch slots and fills them from a resolver.
//
// A *Table is the process-wide flavour: one atomic slot per registry entry,
// indexed by apis.Entry.Index. Bind adapts a caller-owned struct of
// apis.Proc fields into the same Slots shape, so Populate runs one
// algorithm for both destinations.
package table

import (
	"sync/atomic"

	"dirpx.dev/pfx/apis"
)

// Slots is a population destination.
type Slots interface {
	// Store writes p into the slot of e and reports whether a slot exists.
	Store(e apis.Entry, p apis.Proc) bool
}

// Table is a set of global dispatch slots laid out after a registry.
// Reads and writes of individual slots are atomic; Table is safe for
// concurrent use.
type Table struct {
	reg   apis.Registry
	slots []atomic.Uintptr
}

// Ensure Table implements Slots.
var _ Slots = (*Table)(nil)

// New allocates one Null slot per entry currently registered in reg.
func New(reg apis.Registry) *Table {
	n := 0
	if reg != nil {
		n = reg.Count()
	}
	return &Table{reg: reg, slots: make([]atomic.Uintptr, n)}
}

// Store implements Slots.
func (t *Table) Store(e apis.Entry, p apis.Proc) bool {
	if e.Index < 0 || e.Index >= len(t.slots) {
		return false
	}
	t.slots[e.Index].Store(uintptr(p))
	return true
}

// Len returns the number of slots.
func (t *Table) Len() int { return len(t.slots) }

// At returns the slot at index i, or 0 when i is out of range.
func (t *Table) At(i int) apis.Proc {
	if i < 0 || i >= len(t.slots) {
		return 0
	}
	return apis.Proc(t.slots[i].Load())
}

// Get returns the slot of the entry registered under name.
func (t *Table) Get(name string) apis.Proc {
	if t.reg == nil {
		return 0
	}
	e, ok := t.reg.Lookup(name)
	if !ok {
		return 0
	}
	return t.At(e.Index)
}

// Resolved counts the non-Null slots.
func (t *Table) Resolved() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].Load() != 0 {
			n++
		}
	}
	return n
}

// Reset sets every slot back to Null.
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i].Store(0)
	}
}

// Snapshot returns the non-Null slots keyed by entry name.
func (t *Table) Snapshot() map[string]apis.Proc {
	out := make(map[string]apis.Proc)
	if t.reg == nil {
		return out
	}
	for _, e := range t.reg.Entries() {
		if p := t.At(e.Index); p.Valid() {
			out[e.Name] = p
		}
	}
	return out
}
