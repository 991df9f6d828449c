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

package pfx

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotFound reports that no candidate native library could be
	// opened. Matched by errors.Is on an *InitError.
	ErrLibraryNotFound = errors.New("pfx: native library not found")
	// ErrBootstrapMissing reports that the bootstrap symbol is absent or Null.
	// Matched by errors.Is on an *InitError.
	ErrBootstrapMissing = errors.New("pfx: bootstrap symbol missing")
	// ErrNotInitialized is returned in strict mode by scoped operations on an
	// uninitialized loader.
	ErrNotInitialized = errors.New("pfx: loader not initialized")
	// ErrNoInstance is returned in strict mode when a device scope is
	// requested without an owning instance.
	ErrNoInstance = errors.New("pfx: no instance adopted")
	// ErrNullHandle is returned in strict mode when a Null handle is adopted.
	ErrNullHandle = errors.New("pfx: null handle")
	// ErrInvalidScope is returned for a scope outside loader, instance and device.
	ErrInvalidScope = errors.New("pfx: invalid scope")

	errNilLibrary = errors.New("opener returned a nil library")
)

// Phase names the initialization step an InitError comes from.
type Phase string

const (
	// PhaseOpen is the native library open.
	PhaseOpen Phase = "open"
	// PhaseBootstrap is the bootstrap symbol lookup.
	PhaseBootstrap Phase = "bootstrap"
)

// InitError is the hard failure returned by Initialize. The loader state is
// unchanged when it is returned.
type InitError struct {
	// Phase is the failing step.
	Phase Phase
	// Path is the library that was opened, if any.
	Path string
	// Symbol is the bootstrap symbol name for PhaseBootstrap.
	Symbol string
	// Cause is the collaborator error, if any.
	Cause error
}

func (e *InitError) Error() string {
	var msg string
	switch e.Phase {
	case PhaseOpen:
		msg = ErrLibraryNotFound.Error()
	case PhaseBootstrap:
		msg = fmt.Sprintf("%s: %q", ErrBootstrapMissing, e.Symbol)
		if e.Path != "" {
			msg += " in " + e.Path
		}
	default:
		msg = "pfx: initialization failed"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the collaborator error.
func (e *InitError) Unwrap() error { return e.Cause }

// Is matches the sentinel of the failing phase.
func (e *InitError) Is(target error) bool {
	switch target {
	case ErrLibraryNotFound:
		return e.Phase == PhaseOpen
	case ErrBootstrapMissing:
		return e.Phase == PhaseBootstrap
	}
	return false
}
