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

package pfx_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/pfx"
	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/catalog"
	"dirpx.dev/pfx/config"
)

const testRegistry = `
features: [BASE, EXT_VERSION, EXT_B]
entries:
  - {name: getProcFn, scope: loader, guard: BASE}
  - {name: getInstanceProcFn, scope: loader, guard: BASE}
  - {name: createInstanceFn, scope: loader, guard: BASE}
  - {name: enumerateVersionFn, scope: loader, guard: EXT_VERSION}
  - {name: getDeviceProcFn, scope: instance, guard: BASE}
  - {name: instanceFnA, scope: instance, guard: BASE}
  - {name: deviceFnA, scope: device, guard: BASE}
  - {name: deviceFnB, scope: device, guard: EXT_B}
`

// Addresses the fake driver hands out for its getters.
const (
	procBootstrap   apis.Proc = 0x1000
	procGetInstance apis.Proc = 0x2000
	procGetDevice   apis.Proc = 0x3000
	procVersion     apis.Proc = 0x4000
)

// DeviceFns is a caller-owned device table.
type DeviceFns struct {
	DeviceFnA apis.Proc
	DeviceFnB apis.Proc
}

// driver is a fake native library plus the invoker that "calls" its getters.
type driver struct {
	mu sync.Mutex

	// loader is what the bootstrap getter knows at Null context.
	loader map[string]apis.Proc
	// instance is what the instance getter knows for any non-Null instance.
	instance map[string]apis.Proc
	// device answers the device getter; nil knows nothing.
	device func(dev apis.Handle, name string) apis.Proc

	version   apis.Version
	versionOK bool

	openErr     error
	closeErr    error
	noBootstrap bool

	opens, closes int
}

func (d *driver) open(paths []string) (apis.Library, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opens++
	if d.openErr != nil {
		return nil, d.openErr
	}
	return fakeLib{d: d}, nil
}

func (d *driver) counts() (opens, closes int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens, d.closes
}

type fakeLib struct{ d *driver }

func (l fakeLib) Path() string { return "libfake.so.1" }

func (l fakeLib) Symbol(name string) (apis.Proc, error) {
	if name == "getProcFn" && !l.d.noBootstrap {
		return procBootstrap, nil
	}
	return 0, errors.New("undefined symbol: " + name)
}

func (l fakeLib) Close() error {
	l.d.mu.Lock()
	defer l.d.mu.Unlock()
	l.d.closes++
	return l.d.closeErr
}

// Getter implements apis.Invoker.
func (d *driver) Getter(p apis.Proc) apis.ResolveFunc {
	switch p {
	case procBootstrap:
		return func(ctx apis.Handle, name string) apis.Proc {
			if ctx == 0 {
				return d.loader[name]
			}
			return d.instance[name]
		}
	case procGetInstance:
		return func(ctx apis.Handle, name string) apis.Proc {
			if ctx == 0 {
				return 0
			}
			return d.instance[name]
		}
	case procGetDevice:
		return func(ctx apis.Handle, name string) apis.Proc {
			if d.device == nil {
				return 0
			}
			return d.device(ctx, name)
		}
	default:
		return func(apis.Handle, string) apis.Proc { return 0 }
	}
}

// Version implements apis.Invoker.
func (d *driver) Version(p apis.Proc) (apis.Version, bool) {
	if p != procVersion {
		return 0, false
	}
	return d.version, d.versionOK
}

// options configures a loader against d.
func (d *driver) options(t testing.TB, extra ...config.Option) []config.Option {
	t.Helper()
	cat, err := catalog.Parse(strings.NewReader(testRegistry))
	require.NoError(t, err)
	return append([]config.Option{
		config.WithCatalog(cat),
		config.WithSearchPaths("libfake.so.1"),
		config.WithBootstrapSymbol("getProcFn"),
		config.WithInstanceProcName("getInstanceProcFn"),
		config.WithDeviceProcName("getDeviceProcFn"),
		config.WithVersionProcName("enumerateVersionFn"),
		config.WithBaseProcName("createInstanceFn"),
		config.WithFallbackVersion(apis.MakeVersion(0, 1, 0, 0)),
		config.WithOpener(d.open),
		config.WithInvoker(d),
	}, extra...)
}

func (d *driver) newLoader(t testing.TB, extra ...config.Option) *pfx.Loader {
	t.Helper()
	l, err := pfx.New(d.options(t, extra...)...)
	require.NoError(t, err)
	return l
}

// fullDriver knows every entry of testRegistry at its own scope.
func fullDriver() *driver {
	return &driver{
		loader: map[string]apis.Proc{
			"getProcFn":          procBootstrap,
			"getInstanceProcFn":  procGetInstance,
			"createInstanceFn":   0x11,
			"enumerateVersionFn": procVersion,
		},
		instance: map[string]apis.Proc{
			"getDeviceProcFn": procGetDevice,
			"instanceFnA":     0x21,
			"deviceFnA":       0x31,
			"deviceFnB":       0x32,
		},
		device: func(dev apis.Handle, name string) apis.Proc {
			if strings.HasPrefix(name, "device") {
				return apis.Proc(dev)<<8 | apis.Proc(len(name))
			}
			return 0
		},
		version:   apis.MakeVersion(0, 1, 3, 0),
		versionOK: true,
	}
}
