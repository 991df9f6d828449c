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
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/pfx/apis"
)

// File is the YAML shape of a loader configuration file. Absent keys keep
// their defaults.
type File struct {
	SearchPaths      []string `yaml:"search_paths"`
	BootstrapSymbol  string   `yaml:"bootstrap_symbol"`
	InstanceProcName string   `yaml:"instance_proc"`
	DeviceProcName   string   `yaml:"device_proc"`
	VersionProcName  string   `yaml:"version_proc"`
	BaseProcName     string   `yaml:"base_proc"`
	FallbackVersion  string   `yaml:"fallback_version"`
	DeviceFallback   *bool    `yaml:"device_fallback"`
	Strict           *bool    `yaml:"strict"`
	Features         []string `yaml:"features"`
	DisabledFeatures []string `yaml:"disabled_features"`
	GuardEngine      string   `yaml:"guard_engine"`
}

// Load decodes a YAML configuration document into options.
func Load(r io.Reader) ([]Option, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("pfx(config): decode: %w", err)
	}
	return f.Options()
}

// LoadFile reads a YAML configuration file from path.
func LoadFile(path string) ([]Option, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pfx(config): %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Options converts the file into functional options.
func (f File) Options() ([]Option, error) {
	var opts []Option
	if len(f.SearchPaths) > 0 {
		opts = append(opts, WithSearchPaths(f.SearchPaths...))
	}
	if f.BootstrapSymbol != "" {
		opts = append(opts, WithBootstrapSymbol(f.BootstrapSymbol))
	}
	if f.InstanceProcName != "" {
		opts = append(opts, WithInstanceProcName(f.InstanceProcName))
	}
	if f.DeviceProcName != "" {
		opts = append(opts, WithDeviceProcName(f.DeviceProcName))
	}
	if f.VersionProcName != "" {
		opts = append(opts, WithVersionProcName(f.VersionProcName))
	}
	if f.BaseProcName != "" {
		opts = append(opts, WithBaseProcName(f.BaseProcName))
	}
	if f.FallbackVersion != "" {
		v, err := apis.ParseVersion(f.FallbackVersion)
		if err != nil {
			return nil, fmt.Errorf("pfx(config): fallback_version: %w", err)
		}
		opts = append(opts, WithFallbackVersion(v))
	}
	if f.DeviceFallback != nil {
		opts = append(opts, WithDeviceFallback(*f.DeviceFallback))
	}
	if f.Strict != nil {
		opts = append(opts, WithStrict(*f.Strict))
	}
	if f.Features != nil {
		opts = append(opts, WithFeatures(f.Features...))
	}
	if len(f.DisabledFeatures) > 0 {
		opts = append(opts, WithDisabledFeatures(f.DisabledFeatures...))
	}
	if f.GuardEngine != "" {
		opts = append(opts, WithGuardEngine(f.GuardEngine))
	}
	return opts, nil
}
