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

// Config carries loader knobs. It is passed by value and should be treated
// as immutable by implementations.
type Config struct {
	// SearchPaths are the candidate native library paths, tried in order.
	SearchPaths []string

	// BootstrapSymbol is the symbol fetched from the library to bootstrap
	// loader-scope resolution.
	BootstrapSymbol string

	// InstanceProcName is the loader-scope entry used to resolve
	// instance-scope names. If it does not resolve, the bootstrap symbol
	// itself is used.
	InstanceProcName string

	// DeviceProcName is the entry used to resolve device-scope names. It is
	// itself resolved through the instance scope.
	DeviceProcName string

	// VersionProcName is the loader-scope entry that reports the API version.
	VersionProcName string

	// BaseProcName is the loader-scope entry whose presence implies at least
	// FallbackVersion when VersionProcName is unavailable.
	BaseProcName string

	// FallbackVersion is reported by APIVersion when only the base entry
	// point exists.
	FallbackVersion Version

	// DeviceFallback lets device-scope resolution retry through the owning
	// instance when the device getter returns 0.
	DeviceFallback bool

	// Strict turns out-of-order lifecycle calls into errors instead of
	// leaving slots empty.
	Strict bool

	// Features restricts the enabled feature sets. Nil enables every feature
	// declared by the catalog.
	Features []string

	// DisabledFeatures are removed from the enabled set.
	DisabledFeatures []string

	// GuardEngine selects the guard expression engine ("expr" or "cel").
	GuardEngine string

	// Catalog is the membership table source. Nil selects the built-in one.
	Catalog *Catalog

	// Opener opens the native library. Nil selects the platform loader.
	Opener Opener

	// Invoker calls native getters. Nil selects the platform invoker.
	Invoker Invoker
}
