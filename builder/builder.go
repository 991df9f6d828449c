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

package builder

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/guard"
	"dirpx.dev/pfx/registry"
	"dirpx.dev/pfx/resolver"
)

// ErrNilCatalog is returned when BuildRegistry is given no catalog.
var ErrNilCatalog = errors.New("pfx(builder): nil catalog")

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry evaluates every guard in cat against the feature sets
// enabled by cfg and registers the entries in declaration order. Entries
// whose guard is false are kept (so table layouts stay stable) but marked
// disabled. Every compile or registration failure is reported.
func (b *builder) BuildRegistry(cfg apis.Config, cat *apis.Catalog) (apis.Registry, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	enabled, err := guard.Enabled(cat.Features, cfg.Features, cfg.DisabledFeatures)
	if err != nil {
		return nil, err
	}
	eng, err := guard.New(cfg.GuardEngine, cat.Features)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	var errs error
	for _, d := range cat.Entries {
		on, err := evaluate(eng, d.Guard, enabled)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", d.Name, err))
			continue
		}
		err = reg.Register(apis.Entry{
			Name:      d.Name,
			Scope:     d.Scope,
			Guard:     d.Guard,
			Signature: d.Signature,
			Enabled:   on,
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", d.Name, err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return reg, nil
}

func evaluate(eng guard.Engine, src string, enabled map[string]bool) (bool, error) {
	prog, err := eng.Compile(src)
	if err != nil {
		return false, err
	}
	return prog.Eval(enabled)
}

// BuildResolver chains strategies for scope s. For the device scope the
// chain is expected as (device, instance); the instance fallback is dropped
// unless cfg.DeviceFallback is set, so every device resolution in the
// process follows the same policy.
func (b *builder) BuildResolver(cfg apis.Config, s apis.Scope, chain ...apis.Strategy) apis.Resolver {
	if s == apis.ScopeDevice && !cfg.DeviceFallback && len(chain) > 1 {
		chain = chain[:1]
	}
	return resolver.New(chain...)
}
