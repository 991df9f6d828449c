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

import (
	"fmt"
	"strings"
)

// Proc is a resolved native function pointer. The zero value means the
// entry point is unavailable.
type Proc uintptr

// Valid reports whether p points at something.
func (p Proc) Valid() bool { return p != 0 }

// Handle is an opaque scope token passed to a "get proc address" primitive:
// zero for the loader scope, an instance or a device handle otherwise.
type Handle uintptr

// ResolveFunc is the resolver callback contract: a pure lookup that maps
// (context, name) to a function pointer, returning 0 for unknown or
// unavailable names. Implementations must not panic and must be cheap enough
// to be called thousands of times during population.
type ResolveFunc func(ctx Handle, name string) Proc

// Scope selects which "get proc" primitive and which context token are used
// to resolve an entry point.
type Scope uint8

const (
	// ScopeLoader covers the small fixed set of entry points needed before any
	// instance exists (create instance, enumerate layers/extensions/version).
	ScopeLoader Scope = iota
	// ScopeInstance covers entry points resolved against an instance handle.
	ScopeInstance
	// ScopeDevice covers entry points resolved against a device handle.
	ScopeDevice
)

// Scopes lists every scope in population order.
var Scopes = [...]Scope{ScopeLoader, ScopeInstance, ScopeDevice}

// String returns the lowercase scope name.
func (s Scope) String() string {
	switch s {
	case ScopeLoader:
		return "loader"
	case ScopeInstance:
		return "instance"
	case ScopeDevice:
		return "device"
	default:
		return fmt.Sprintf("scope(%d)", uint8(s))
	}
}

// ParseScope parses a scope name as written in registry files.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loader", "global":
		return ScopeLoader, nil
	case "instance":
		return ScopeInstance, nil
	case "device":
		return ScopeDevice, nil
	default:
		return 0, fmt.Errorf("unknown scope %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(b []byte) error {
	v, err := ParseScope(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
