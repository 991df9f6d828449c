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

// Package guard compiles and evaluates feature-set guard expressions.
//
// A guard is a boolean expression over feature-set identifiers, e.g.
//
//	VK_VERSION_1_1 || VK_KHR_get_physical_device_properties2
//	(VK_KHR_swapchain && VK_VERSION_1_1) || (VK_KHR_device_group && VK_KHR_surface)
//
// Guards are evaluated once per build configuration, never against runtime
// driver state.
package guard

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrUnknownEngine is returned by New for an unrecognised engine name.
	ErrUnknownEngine = errors.New("pfx(guard): unknown engine")
	// ErrEmptyGuard is returned when compiling an empty expression.
	ErrEmptyGuard = errors.New("pfx(guard): empty expression")
	// ErrUnknownFeature is returned when a feature set is not declared.
	ErrUnknownFeature = errors.New("pfx(guard): unknown feature")
	// ErrNotBool is returned when an expression does not yield a bool.
	ErrNotBool = errors.New("pfx(guard): expression is not boolean")
)

// Program is a compiled guard.
type Program interface {
	// Eval evaluates the guard with enabled feature sets set to true.
	Eval(enabled map[string]bool) (bool, error)
}

// Engine compiles guards over a fixed set of declared features.
type Engine interface {
	// Name returns the engine name.
	Name() string
	// Compile compiles src. Identifiers must be declared features.
	Compile(src string) (Program, error)
}

// New returns the engine called name ("expr" or "cel") for the declared
// feature identifiers. Compiled programs are memoised per source string.
func New(name string, features []string) (Engine, error) {
	var (
		e   Engine
		err error
	)
	switch strings.ToLower(name) {
	case "", "expr":
		e = newExprEngine(features)
	case "cel":
		e, err = newCELEngine(features)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	if err != nil {
		return nil, err
	}
	return &memo{Engine: e}, nil
}

// memo caches compiled programs by source.
type memo struct {
	Engine
	progs sync.Map // map[string]Program
}

// Compile returns the cached program for src or compiles it.
func (m *memo) Compile(src string) (Program, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmptyGuard
	}
	if p, ok := m.progs.Load(src); ok {
		return p.(Program), nil
	}
	p, err := m.Engine.Compile(src)
	if err != nil {
		return nil, err
	}
	m.progs.Store(src, p)
	return p, nil
}

// Enabled computes the enabled feature map. A nil only enables every
// declared feature; disabled entries are removed afterwards. Naming a
// feature that is not declared is an error.
func Enabled(declared, only, disabled []string) (map[string]bool, error) {
	var unknown []string
	check := func(names []string) {
		for _, n := range names {
			if !slices.Contains(declared, n) {
				unknown = append(unknown, n)
			}
		}
	}
	check(only)
	check(disabled)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, strings.Join(unknown, ", "))
	}

	out := make(map[string]bool, len(declared))
	for _, f := range declared {
		out[f] = only == nil || slices.Contains(only, f)
	}
	for _, f := range disabled {
		out[f] = false
	}
	return out, nil
}
