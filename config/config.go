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

package config

import (
	"slices"

	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/library"
)

const (
	// DefaultBootstrapSymbol is fetched from the library to start resolution.
	DefaultBootstrapSymbol = "vkGetInstanceProcAddr"
	// DefaultInstanceProcName resolves instance-scope entry points.
	DefaultInstanceProcName = "vkGetInstanceProcAddr"
	// DefaultDeviceProcName resolves device-scope entry points.
	DefaultDeviceProcName = "vkGetDeviceProcAddr"
	// DefaultVersionProcName reports the loader's API version.
	DefaultVersionProcName = "vkEnumerateInstanceVersion"
	// DefaultBaseProcName is present on every conforming loader.
	DefaultBaseProcName = "vkCreateInstance"
	// DefaultDeviceFallback represents the default for DeviceFallback.
	// When true, device entries missing from the device getter are retried
	// through the owning instance.
	DefaultDeviceFallback = true
	// DefaultStrict represents the default for Strict.
	DefaultStrict = false
	// DefaultGuardEngine is the guard expression engine used when none is set.
	DefaultGuardEngine = "expr"
)

// DefaultFallbackVersion is reported when only the base entry point exists.
var DefaultFallbackVersion = apis.MakeVersion(0, 1, 0, 0)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.GuardEngine == "" {
		cfg.GuardEngine = DefaultGuardEngine
	}
	if cfg.BootstrapSymbol == "" {
		cfg.BootstrapSymbol = DefaultBootstrapSymbol
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		SearchPaths:      library.DefaultSearchPaths(),
		BootstrapSymbol:  DefaultBootstrapSymbol,
		InstanceProcName: DefaultInstanceProcName,
		DeviceProcName:   DefaultDeviceProcName,
		VersionProcName:  DefaultVersionProcName,
		BaseProcName:     DefaultBaseProcName,
		FallbackVersion:  DefaultFallbackVersion,
		DeviceFallback:   DefaultDeviceFallback,
		Strict:           DefaultStrict,
		GuardEngine:      DefaultGuardEngine,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSearchPaths replaces the library search paths.
// An empty list keeps the platform defaults.
func WithSearchPaths(paths ...string) Option {
	return func(c *apis.Config) {
		if len(paths) == 0 {
			return
		}
		c.SearchPaths = slices.Clone(paths)
	}
}

// WithBootstrapSymbol sets the BootstrapSymbol option.
func WithBootstrapSymbol(name string) Option {
	return func(c *apis.Config) {
		c.BootstrapSymbol = name
	}
}

// WithInstanceProcName sets the InstanceProcName option.
func WithInstanceProcName(name string) Option {
	return func(c *apis.Config) {
		c.InstanceProcName = name
	}
}

// WithDeviceProcName sets the DeviceProcName option.
func WithDeviceProcName(name string) Option {
	return func(c *apis.Config) {
		c.DeviceProcName = name
	}
}

// WithVersionProcName sets the VersionProcName option.
func WithVersionProcName(name string) Option {
	return func(c *apis.Config) {
		c.VersionProcName = name
	}
}

// WithBaseProcName sets the BaseProcName option.
func WithBaseProcName(name string) Option {
	return func(c *apis.Config) {
		c.BaseProcName = name
	}
}

// WithFallbackVersion sets the FallbackVersion option.
func WithFallbackVersion(v apis.Version) Option {
	return func(c *apis.Config) {
		c.FallbackVersion = v
	}
}

// WithDeviceFallback sets the DeviceFallback option.
func WithDeviceFallback(enabled bool) Option {
	return func(c *apis.Config) {
		c.DeviceFallback = enabled
	}
}

// WithStrict sets the Strict option.
func WithStrict(strict bool) Option {
	return func(c *apis.Config) {
		c.Strict = strict
	}
}

// WithFeatures restricts the enabled feature sets to features.
func WithFeatures(features ...string) Option {
	return func(c *apis.Config) {
		c.Features = append([]string{}, features...)
	}
}

// WithDisabledFeatures removes features from the enabled set.
func WithDisabledFeatures(features ...string) Option {
	return func(c *apis.Config) {
		c.DisabledFeatures = append(c.DisabledFeatures, features...)
	}
}

// WithGuardEngine selects the guard expression engine.
// An empty name resets to the default.
func WithGuardEngine(engine string) Option {
	return func(c *apis.Config) {
		if engine == "" {
			engine = DefaultGuardEngine
		}
		c.GuardEngine = engine
	}
}

// WithCatalog sets the membership table source.
func WithCatalog(cat *apis.Catalog) Option {
	return func(c *apis.Config) {
		c.Catalog = cat
	}
}

// WithOpener sets the native library opener.
func WithOpener(open apis.Opener) Option {
	return func(c *apis.Config) {
		c.Opener = open
	}
}

// WithInvoker sets the native getter invoker.
func WithInvoker(inv apis.Invoker) Option {
	return func(c *apis.Config) {
		c.Invoker = inv
	}
}
