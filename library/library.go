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

// Package library opens the native driver library and looks up its exported
// symbols. It is the only package that talks to the platform dynamic loader.
package library

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/multierr"

	"dirpx.dev/pfx/apis"
)

var (
	// ErrNotFound is returned when none of the search paths could be opened.
	ErrNotFound = errors.New("pfx(library): no loadable library found")
	// ErrNoPaths is returned when Open is called with an empty search list.
	ErrNoPaths = errors.New("pfx(library): empty search path list")
	// ErrClosed is returned by Symbol after Close.
	ErrClosed = errors.New("pfx(library): library is closed")
	// ErrUnsupported is returned on platforms without a dynamic loader.
	ErrUnsupported = errors.New("pfx(library): dynamic loading unsupported on " + runtime.GOOS)
)

// DefaultSearchPaths returns the conventional driver library names for the
// running platform, most specific first.
func DefaultSearchPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"vulkan-1.dll"}
	case "darwin", "ios":
		return []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}
	case "android":
		return []string{"libvulkan.so"}
	default:
		return []string{"libvulkan.so.1", "libvulkan.so"}
	}
}

// Open opens the first path that loads. The error of every failed attempt is
// kept and reported together with ErrNotFound.
func Open(paths []string) (apis.Library, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	var errs error
	for _, p := range paths {
		h, err := openLibrary(p)
		if err == nil && h != 0 {
			return &sharedLibrary{handle: h, path: p}, nil
		}
		if err == nil {
			err = errors.New("null handle")
		}
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", p, err))
	}
	return nil, fmt.Errorf("%w: %w", ErrNotFound, errs)
}

// sharedLibrary is an open native library handle.
type sharedLibrary struct {
	handle uintptr
	path   string
}

// Ensure sharedLibrary implements apis.Library.
var _ apis.Library = (*sharedLibrary)(nil)

// Path returns the path the library was opened from.
func (l *sharedLibrary) Path() string { return l.path }

// Symbol looks up name in the library.
func (l *sharedLibrary) Symbol(name string) (apis.Proc, error) {
	if l.handle == 0 {
		return 0, ErrClosed
	}
	addr, err := getSymbol(l.handle, name)
	if err != nil {
		return 0, err
	}
	return apis.Proc(addr), nil
}

// Close unloads the library. Closing twice is a no-op.
func (l *sharedLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	h := l.handle
	l.handle = 0
	return closeLibrary(h)
}
