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

package config_test

import (
	"strings"
	"testing"

	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.BootstrapSymbol != config.DefaultBootstrapSymbol {
		t.Fatalf("BootstrapSymbol = %q, want %q", got.BootstrapSymbol, config.DefaultBootstrapSymbol)
	}
	if got.DeviceProcName != config.DefaultDeviceProcName {
		t.Fatalf("DeviceProcName = %q, want %q", got.DeviceProcName, config.DefaultDeviceProcName)
	}
	if got.DeviceFallback != config.DefaultDeviceFallback {
		t.Fatalf("DeviceFallback = %v, want %v", got.DeviceFallback, config.DefaultDeviceFallback)
	}
	if got.FallbackVersion != config.DefaultFallbackVersion {
		t.Fatalf("FallbackVersion = %v, want %v", got.FallbackVersion, config.DefaultFallbackVersion)
	}
	if got.Strict {
		t.Fatalf("Strict = true, want false")
	}
	if got.Features != nil {
		t.Fatalf("Features = %v, want nil (all enabled)", got.Features)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got.BootstrapSymbol != def.BootstrapSymbol ||
		got.GuardEngine != def.GuardEngine ||
		got.DeviceFallback != def.DeviceFallback ||
		len(got.SearchPaths) != len(def.SearchPaths) {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithDeviceFallback(t *testing.T) {
	c := config.NewConfig(config.WithDeviceFallback(false))
	if c.DeviceFallback {
		t.Fatalf("DeviceFallback = %v, want false", c.DeviceFallback)
	}

	c2 := config.NewConfig(config.WithDeviceFallback(true))
	if !c2.DeviceFallback {
		t.Fatalf("DeviceFallback = %v, want true", c2.DeviceFallback)
	}
}

func TestWithSearchPaths_EmptyKeepsDefaults(t *testing.T) {
	def := config.DefaultConfig()
	c := config.NewConfig(config.WithSearchPaths())
	if len(c.SearchPaths) != len(def.SearchPaths) {
		t.Fatalf("SearchPaths = %v, want %v", c.SearchPaths, def.SearchPaths)
	}

	c2 := config.NewConfig(config.WithSearchPaths("/opt/a.so", "/opt/b.so"))
	if len(c2.SearchPaths) != 2 || c2.SearchPaths[0] != "/opt/a.so" {
		t.Fatalf("SearchPaths = %v", c2.SearchPaths)
	}
}

func TestWithGuardEngine_EmptyResets(t *testing.T) {
	c := config.NewConfig(config.WithGuardEngine("cel"), config.WithGuardEngine(""))
	if c.GuardEngine != config.DefaultGuardEngine {
		t.Fatalf("GuardEngine = %q, want %q", c.GuardEngine, config.DefaultGuardEngine)
	}
}

func TestNilOptionIgnored(t *testing.T) {
	c := config.NewConfig(nil, config.WithStrict(true))
	if !c.Strict {
		t.Fatalf("Strict = false, want true")
	}
}

func TestWithFeatures_Copies(t *testing.T) {
	in := []string{"VK_VERSION_1_0"}
	c := config.NewConfig(config.WithFeatures(in...))
	in[0] = "mutated"
	if c.Features[0] != "VK_VERSION_1_0" {
		t.Fatalf("Features aliased caller slice: %v", c.Features)
	}
}

func TestLoad(t *testing.T) {
	doc := `
search_paths: [/usr/lib/libvk.so]
device_proc: getDeviceProcFn
fallback_version: "1.2"
device_fallback: false
strict: true
disabled_features: [VK_KHR_swapchain]
guard_engine: cel
`
	opts, err := config.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := config.NewConfig(opts...)
	if c.SearchPaths[0] != "/usr/lib/libvk.so" {
		t.Fatalf("SearchPaths = %v", c.SearchPaths)
	}
	if c.DeviceProcName != "getDeviceProcFn" {
		t.Fatalf("DeviceProcName = %q", c.DeviceProcName)
	}
	if c.FallbackVersion != apis.MakeVersion(0, 1, 2, 0) {
		t.Fatalf("FallbackVersion = %v", c.FallbackVersion)
	}
	if c.DeviceFallback || !c.Strict {
		t.Fatalf("DeviceFallback=%v Strict=%v", c.DeviceFallback, c.Strict)
	}
	if len(c.DisabledFeatures) != 1 || c.GuardEngine != "cel" {
		t.Fatalf("DisabledFeatures=%v GuardEngine=%q", c.DisabledFeatures, c.GuardEngine)
	}
}

func TestLoad_Empty(t *testing.T) {
	opts, err := config.Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(opts) != 0 {
		t.Fatalf("got %d options from empty document", len(opts))
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load(strings.NewReader("unknown_key: 1\n")); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := config.Load(strings.NewReader("fallback_version: nope\n")); err == nil {
		t.Fatal("expected error for bad version")
	}
}
