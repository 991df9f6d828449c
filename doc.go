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

// Package pfx resolves the entry points of a versioned, extensible native C
// API (Vulkan-shaped: core versions plus extensions) at run time and fills
// dispatch tables with them.
//
// # Scopes
//
// Every entry point belongs to one resolution scope:
//
//   - loader: the few entry points needed before anything else exists,
//     resolved through the bootstrap symbol with a Null context.
//   - instance: resolved through the "get instance proc" entry point and
//     an instance handle.
//   - device: resolved through the "get device proc" entry point and a
//     device handle. The device getter is itself resolved at instance
//     scope. When config.WithDeviceFallback is on (the default), a device
//     entry the device getter does not know is retried through the owning
//     instance.
//
// Which entries exist, their scope and the feature sets gating them come
// from a declarative registry (package catalog). Guards are boolean
// expressions over feature sets, evaluated once against the configured
// feature selection (package guard).
//
// # Loader
//
// A Loader is the explicit context. It owns the native library, the current
// instance and device, and one global slot per registry entry:
//
//	l, err := pfx.New()
//	if err != nil {
//		return err
//	}
//	if err := l.Initialize(); err != nil {
//		return err // *pfx.InitError; errors.Is(err, pfx.ErrLibraryNotFound)
//	}
//	defer l.Finalize()
//
//	// ... create the instance through l.Proc("vkCreateInstance") ...
//	l.AdoptInstance(instance)
//	// ... create the device ...
//	l.AdoptDevice(device)
//
// State moves Uninitialized -> LoaderReady -> InstanceReady -> DeviceReady;
// Finalize returns to Uninitialized from anywhere and is a no-op when
// already there.
//
// An entry point the driver does not provide is a Null slot, never an
// error. Only Initialize fails hard: when no library opens or the bootstrap
// symbol is missing.
//
// # Caller-owned tables
//
// PopulateTable fills any struct of apis.Proc fields for an arbitrary
// instance or device without touching the global slots, so several devices
// can each dispatch through their own table:
//
//	var dev catalog.DeviceTable
//	err := l.PopulateTable(apis.ScopeDevice, device, &dev)
//
// Fields bind by `pfx:"name"` tag or by their name with the first letter
// lowered. Use native.Bind to turn a slot into a typed Go func.
//
// # Process-wide loader
//
// The package-level functions (Initialize, AdoptInstance, ...) forward to
// Default, a lazily created process-wide Loader published through an
// atomic pointer. Configure and SetDefault replace it.
//
// # Ordering
//
// By default out-of-order calls are tolerated: adopting a device without an
// instance leaves the device slots Null. config.WithStrict(true) turns such
// calls into ErrNotInitialized, ErrNoInstance or ErrNullHandle instead.
package pfx
