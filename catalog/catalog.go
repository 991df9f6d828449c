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

// Package catalog holds the declarative entry-point membership table.
//
// The built-in table lives in registry.yaml and is embedded at compile time;
// hosts targeting a different API surface may load their own registry file
// with Parse or Load. tables_gen.go is generated from registry.yaml by
// cmd/pfx-gen.
package catalog

//go:generate go run ../cmd/pfx-gen -registry registry.yaml -output tables_gen.go -package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/guard"
)

var (
	// ErrEmptyName is reported for an entry without a name.
	ErrEmptyName = errors.New("pfx(catalog): entry without name")
	// ErrDuplicateName is reported when two entries share a name.
	ErrDuplicateName = errors.New("pfx(catalog): duplicate entry name")
	// ErrEmptyGuard is reported for an entry without a guard.
	ErrEmptyGuard = errors.New("pfx(catalog): entry without guard")
	// ErrDuplicateFeature is reported when a feature set is declared twice.
	ErrDuplicateFeature = errors.New("pfx(catalog): duplicate feature")
)

//go:embed registry.yaml
var registryYAML []byte

var (
	defaultOnce sync.Once
	defaultCat  *apis.Catalog
	defaultErr  error
)

// Default returns the built-in catalog. It is parsed once; callers must not
// mutate the result.
func Default() (*apis.Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(bytes.NewReader(registryYAML))
	})
	return defaultCat, defaultErr
}

// MustDefault is like Default but panics on error.
func MustDefault() *apis.Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a registry document.
func Parse(r io.Reader) (*apis.Catalog, error) {
	var c apis.Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("pfx(catalog): decode: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads and validates the registry file at path.
func Load(path string) (*apis.Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pfx(catalog): %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Validate checks names, guards and feature references. Every problem is
// reported, not just the first.
func Validate(c *apis.Catalog) error {
	var errs error

	features := make(map[string]struct{}, len(c.Features))
	for _, f := range c.Features {
		if _, dup := features[f]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrDuplicateFeature, f))
		}
		features[f] = struct{}{}
	}

	eng, err := guard.New("expr", c.Features)
	if err != nil {
		return multierr.Append(errs, err)
	}

	seen := make(map[string]int, len(c.Entries))
	for i, d := range c.Entries {
		name := strings.TrimSpace(d.Name)
		switch {
		case name == "":
			errs = multierr.Append(errs, fmt.Errorf("%w (entry %d)", ErrEmptyName, i))
			continue
		case seen[name] > 0:
			errs = multierr.Append(errs, fmt.Errorf("%w: %s (entries %d and %d)", ErrDuplicateName, name, seen[name]-1, i))
			continue
		}
		seen[name] = i + 1

		if strings.TrimSpace(d.Guard) == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrEmptyGuard, name))
			continue
		}
		if _, err := eng.Compile(d.Guard); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errs
}
