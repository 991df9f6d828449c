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
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/builder"
	"dirpx.dev/pfx/catalog"
	"dirpx.dev/pfx/config"
	"dirpx.dev/pfx/library"
	"dirpx.dev/pfx/native"
	"dirpx.dev/pfx/strategy"
	"dirpx.dev/pfx/table"
)

// Loader owns one native library, its bootstrap resolver, the current
// instance and device, and the global dispatch slots filled from them.
//
// Lifecycle methods are serialized by the loader. Slot reads (Proc, Slots)
// are atomic and never block; callers still have to order lifecycle
// transitions against their own use of the resolved pointers.
type Loader struct {
	id  uuid.UUID
	cfg apis.Config
	reg apis.Registry
	bld apis.Builder

	// mu guards every field below; slots are atomic on their own.
	mu        sync.RWMutex
	state     State
	lib       apis.Library
	bootstrap apis.ResolveFunc
	loader    apis.Resolver
	instGet   apis.ResolveFunc
	instance  apis.Handle
	device    apis.Handle
	slots     *table.Table
}

// New builds a Loader from opts. The membership table is compiled here, so
// an invalid catalog or guard configuration fails early.
func New(opts ...config.Option) (*Loader, error) {
	cfg := config.NewConfig(opts...)
	if cfg.Opener == nil {
		cfg.Opener = library.Open
	}
	if cfg.Invoker == nil {
		cfg.Invoker = native.Invoker()
	}
	cat := cfg.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return nil, err
		}
	}

	bld := builder.New()
	reg, err := bld.BuildRegistry(cfg, cat)
	if err != nil {
		return nil, fmt.Errorf("pfx: build registry: %w", err)
	}
	return &Loader{
		id:    uuid.New(),
		cfg:   cfg,
		reg:   reg,
		bld:   bld,
		slots: table.New(reg),
	}, nil
}

// ID identifies the loader in logs.
func (l *Loader) ID() string { return l.id.String() }

// Config returns the configuration the loader was built with.
func (l *Loader) Config() apis.Config { return l.cfg }

// Registry returns the compiled membership table.
func (l *Loader) Registry() apis.Registry { return l.reg }

func (l *Loader) log() *zap.Logger {
	return Logger().With(zap.String("loader", l.id.String()))
}

// Initialize opens the native library, resolves the bootstrap symbol and
// populates the loader-scope slots. It is a no-op on an initialized loader.
// On failure it returns an *InitError and leaves the loader untouched.
func (l *Loader) Initialize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Uninitialized {
		return nil
	}
	log := l.log()

	lib, err := l.cfg.Opener(l.cfg.SearchPaths)
	if err != nil {
		log.Warn("native library not found", zap.Strings("paths", l.cfg.SearchPaths), zap.Error(err))
		return &InitError{Phase: PhaseOpen, Cause: err}
	}
	if lib == nil {
		log.Warn("opener returned no library", zap.Strings("paths", l.cfg.SearchPaths))
		return &InitError{Phase: PhaseOpen, Cause: errNilLibrary}
	}
	path := libraryPath(lib)

	sym, err := lib.Symbol(l.cfg.BootstrapSymbol)
	if err != nil || !sym.Valid() {
		if cerr := lib.Close(); cerr != nil {
			log.Warn("close native library", zap.String("path", path), zap.Error(cerr))
		}
		log.Warn("bootstrap symbol missing", zap.String("symbol", l.cfg.BootstrapSymbol), zap.String("path", path))
		return &InitError{Phase: PhaseBootstrap, Path: path, Symbol: l.cfg.BootstrapSymbol, Cause: err}
	}

	l.start(lib, l.cfg.Invoker.Getter(sym))
	log.Info("loader initialized", zap.String("path", path), zap.Int("resolved", l.slots.Resolved()))
	return nil
}

// InitializeWithResolver starts the loader from a caller-supplied
// loader-scope resolver instead of a native library. An initialized loader
// is finalized first; a failure to close its library is logged and the
// loader still restarts. Call Finalize beforehand to observe that error.
func (l *Loader) InitializeWithResolver(r apis.ResolveFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Uninitialized {
		if err := l.teardown(); err != nil {
			l.log().Warn("previous library not released on reinitialize", zap.Error(err))
		}
	}
	l.start(nil, r)
	l.log().Info("loader initialized with custom resolver", zap.Int("resolved", l.slots.Resolved()))
}

// start must be called with mu held.
func (l *Loader) start(lib apis.Library, bootstrap apis.ResolveFunc) {
	l.lib = lib
	l.bootstrap = bootstrap
	l.loader = l.bld.BuildResolver(l.cfg, apis.ScopeLoader, strategy.NewLoaderStrategy(bootstrap))
	table.Populate(l.reg, apis.ScopeLoader, l.loader, l.slots)

	l.instGet = bootstrap
	if p := l.gated(l.loader, l.cfg.InstanceProcName); p.Valid() {
		l.instGet = l.cfg.Invoker.Getter(p)
	}
	l.instance, l.device = 0, 0
	l.state = LoaderReady
}

// Finalize closes the library if the loader owns one, sets every global
// slot to Null and forgets the current instance and device. It is a no-op
// on an uninitialized loader. A library close failure is returned after the
// loader has been reset.
func (l *Loader) Finalize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Uninitialized {
		// tolerant adopts may have recorded handles
		l.instance, l.device = 0, 0
		return nil
	}
	err := l.teardown()
	l.log().Info("loader finalized")
	return err
}

// teardown must be called with mu held.
func (l *Loader) teardown() error {
	var err error
	if l.lib != nil {
		if err = l.lib.Close(); err != nil {
			l.log().Warn("close native library", zap.Error(err))
			err = fmt.Errorf("pfx: close library: %w", err)
		}
	}
	l.slots.Reset()
	l.lib = nil
	l.bootstrap = nil
	l.loader = nil
	l.instGet = nil
	l.instance, l.device = 0, 0
	l.state = Uninitialized
	return err
}

// AdoptInstance populates the instance-scope and device-scope slots
// through the instance adapter bound to h and records h as the current
// instance.
func (l *Loader) AdoptInstance(h apis.Handle) error {
	return l.adoptInstance(h, true)
}

// AdoptInstanceOnly is AdoptInstance without touching device-scope slots,
// for callers that keep per-device tables.
func (l *Loader) AdoptInstanceOnly(h apis.Handle) error {
	return l.adoptInstance(h, false)
}

func (l *Loader) adoptInstance(h apis.Handle, devices bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cfg.Strict {
		if l.state == Uninitialized {
			return ErrNotInitialized
		}
		if h == 0 {
			return ErrNullHandle
		}
	}

	res := l.bld.BuildResolver(l.cfg, apis.ScopeInstance, strategy.NewInstanceStrategy(l.instGet, h))
	n := table.Populate(l.reg, apis.ScopeInstance, res, l.slots)
	if devices {
		n += table.Populate(l.reg, apis.ScopeDevice, res, l.slots)
	}

	l.instance, l.device = h, 0
	if l.state != Uninitialized {
		l.state = InstanceReady
	}
	l.log().Info("instance adopted",
		zap.Uint64("instance", uint64(h)),
		zap.Bool("devices", devices),
		zap.Int("resolved", n),
	)
	return nil
}

// AdoptDevice resolves the device getter through the current instance and
// repopulates the device-scope slots through the device adapter bound to h,
// falling back to the instance adapter when the configuration allows it.
// Without a current instance every device slot ends up Null.
func (l *Loader) AdoptDevice(h apis.Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cfg.Strict {
		switch {
		case l.state == Uninitialized:
			return ErrNotInitialized
		case l.instance == 0:
			return ErrNoInstance
		case h == 0:
			return ErrNullHandle
		}
	}

	var inst apis.Strategy
	if l.instGet != nil && l.instance != 0 {
		inst = strategy.NewInstanceStrategy(l.instGet, l.instance)
	}
	n := table.Populate(l.reg, apis.ScopeDevice, l.deviceResolver(inst, h), l.slots)

	l.device = h
	if l.instance != 0 && l.state != Uninitialized {
		l.state = DeviceReady
	}
	l.log().Info("device adopted",
		zap.Uint64("device", uint64(h)),
		zap.Bool("fallback", l.cfg.DeviceFallback),
		zap.Int("resolved", n),
	)
	return nil
}

// deviceResolver fetches the device getter through inst and chains the
// device adapter for h in front of inst. A nil inst resolves nothing.
func (l *Loader) deviceResolver(inst apis.Strategy, h apis.Handle) apis.Resolver {
	if inst == nil {
		return l.bld.BuildResolver(l.cfg, apis.ScopeDevice)
	}
	var getDevice apis.Proc
	if p, ok := inst.TryResolve(l.cfg.DeviceProcName); ok {
		getDevice = p
	}
	dev := strategy.NewDeviceStrategy(l.cfg.Invoker.Getter(getDevice), h)
	return l.bld.BuildResolver(l.cfg, apis.ScopeDevice, dev, inst)
}

// PopulateTable fills dst with the entries of scope resolved for handle h,
// without touching the global slots or the current instance and device.
// dst is a pointer to a struct of apis.Proc fields (see table.Bind) or any
// table.Slots. h is ignored for the loader scope. A device table needs an
// owning instance: the current one, WithInstance or WithInstanceResolver.
// PopulateTable may run concurrently for different destinations.
func (l *Loader) PopulateTable(scope apis.Scope, h apis.Handle, dst any, opts ...TableOption) error {
	if int(scope) >= len(apis.Scopes) {
		return fmt.Errorf("%w: %s", ErrInvalidScope, scope)
	}
	slots, err := table.Bind(dst)
	if err != nil {
		return err
	}
	var o tableOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	l.mu.RLock()
	state, loader, get, instance := l.state, l.loader, l.instGet, l.instance
	l.mu.RUnlock()

	if o.hasInstance {
		instance = o.instance
	}
	if l.cfg.Strict && state == Uninitialized && o.get == nil {
		return ErrNotInitialized
	}

	var res apis.Resolver
	switch scope {
	case apis.ScopeLoader:
		res = loader
	case apis.ScopeInstance:
		inst := strategy.NewInstanceStrategy(get, h)
		if o.get != nil {
			inst = strategy.NewFuncStrategy(o.get, h)
		}
		res = l.bld.BuildResolver(l.cfg, apis.ScopeInstance, inst)
	case apis.ScopeDevice:
		var inst apis.Strategy
		switch {
		case o.get != nil:
			inst = strategy.NewFuncStrategy(o.get, instance)
		case get != nil && instance != 0:
			inst = strategy.NewInstanceStrategy(get, instance)
		case l.cfg.Strict:
			return ErrNoInstance
		}
		res = l.deviceResolver(inst, h)
	}

	n := table.Populate(l.reg, scope, res, slots)
	l.log().Debug("table populated",
		zap.Stringer("scope", scope),
		zap.Uint64("handle", uint64(h)),
		zap.Int("resolved", n),
	)
	return nil
}

// CurrentInstance returns the adopted instance, or 0.
func (l *Loader) CurrentInstance() apis.Handle {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.instance
}

// CurrentDevice returns the adopted device, or 0.
func (l *Loader) CurrentDevice() apis.Handle {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.device
}

// State returns the lifecycle state.
func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// APIVersion reports the version returned by the loader-scope version
// entry. When that entry is Null or fails, the configured fallback is
// reported if the base entry is set, else 0. Registered entries are read
// from the global slots, so a disabled feature is never called.
func (l *Loader) APIVersion() apis.Version {
	l.mu.RLock()
	loader := l.loader
	l.mu.RUnlock()

	if loader == nil {
		return 0
	}
	if p := l.gated(loader, l.cfg.VersionProcName); p.Valid() {
		if v, ok := l.cfg.Invoker.Version(p); ok {
			return v
		}
	}
	if l.gated(loader, l.cfg.BaseProcName).Valid() {
		return l.cfg.FallbackVersion
	}
	return 0
}

// gated returns the global slot of a registered name and resolves
// unregistered names live through res.
func (l *Loader) gated(res apis.Resolver, name string) apis.Proc {
	if _, ok := l.reg.Lookup(name); ok {
		return l.slots.Get(name)
	}
	return res.Resolve(name)
}

// Proc returns the global slot of the entry registered under name.
func (l *Loader) Proc(name string) apis.Proc { return l.slots.Get(name) }

// Slots returns the global dispatch slots.
func (l *Loader) Slots() *table.Table { return l.slots }

// Snapshot returns the non-Null global slots keyed by entry name.
func (l *Loader) Snapshot() map[string]apis.Proc { return l.slots.Snapshot() }

func libraryPath(lib apis.Library) string {
	if p, ok := lib.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}
