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
	"sync"
	"sync/atomic"

	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/config"
)

// ErrNilLoader is returned by SetDefault for a nil loader.
var ErrNilLoader = errors.New("pfx: nil loader")

var (
	// std is the process-wide loader behind the package-level functions.
	std atomic.Pointer[Loader]
	// stdMu serializes replacement of std.
	stdMu sync.Mutex
)

// Default returns the process-wide loader, creating it with the default
// configuration on first use. It panics if the built-in catalog fails to
// compile, which is a build defect.
func Default() *Loader {
	if l := std.Load(); l != nil {
		return l
	}

	stdMu.Lock()
	defer stdMu.Unlock()

	if l := std.Load(); l != nil {
		return l
	}
	l, err := New()
	if err != nil {
		panic(err)
	}
	std.Store(l)
	return l
}

// Configure replaces the process-wide loader with one built from opts. The
// previous loader is finalized; its close error, if any, is returned after
// the swap.
func Configure(opts ...config.Option) error {
	l, err := New(opts...)
	if err != nil {
		return err
	}
	return SetDefault(l)
}

// SetDefault publishes l as the process-wide loader and finalizes the one
// it replaces.
func SetDefault(l *Loader) error {
	if l == nil {
		return ErrNilLoader
	}

	stdMu.Lock()
	defer stdMu.Unlock()

	old := std.Swap(l)
	if old == nil || old == l {
		return nil
	}
	return old.Finalize()
}

// Initialize calls Initialize on the process-wide loader.
func Initialize() error { return Default().Initialize() }

// InitializeWithResolver calls InitializeWithResolver on the process-wide loader.
func InitializeWithResolver(r apis.ResolveFunc) { Default().InitializeWithResolver(r) }

// Finalize calls Finalize on the process-wide loader.
func Finalize() error { return Default().Finalize() }

// AdoptInstance calls AdoptInstance on the process-wide loader.
func AdoptInstance(h apis.Handle) error { return Default().AdoptInstance(h) }

// AdoptInstanceOnly calls AdoptInstanceOnly on the process-wide loader.
func AdoptInstanceOnly(h apis.Handle) error { return Default().AdoptInstanceOnly(h) }

// AdoptDevice calls AdoptDevice on the process-wide loader.
func AdoptDevice(h apis.Handle) error { return Default().AdoptDevice(h) }

// PopulateTable calls PopulateTable on the process-wide loader.
func PopulateTable(scope apis.Scope, h apis.Handle, dst any, opts ...TableOption) error {
	return Default().PopulateTable(scope, h, dst, opts...)
}

// CurrentInstance returns the instance adopted by the process-wide loader.
func CurrentInstance() apis.Handle { return Default().CurrentInstance() }

// CurrentDevice returns the device adopted by the process-wide loader.
func CurrentDevice() apis.Handle { return Default().CurrentDevice() }

// APIVersion returns the API version seen by the process-wide loader.
func APIVersion() apis.Version { return Default().APIVersion() }

// Proc returns a global slot of the process-wide loader.
func Proc(name string) apis.Proc { return Default().Proc(name) }
