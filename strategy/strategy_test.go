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

package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/pfx/apis"
	"dirpx.dev/pfx/strategy"
)

// recorder is a resolver callback that knows a fixed name set and records
// the context token of each call.
type recorder struct {
	known map[string]apis.Proc
	ctxs  []apis.Handle
}

func (r *recorder) resolve(ctx apis.Handle, name string) apis.Proc {
	r.ctxs = append(r.ctxs, ctx)
	return r.known[name]
}

func newRecorder(known map[string]apis.Proc) *recorder {
	return &recorder{known: known}
}

func TestLoaderStrategy_PassesNullContext(t *testing.T) {
	r := newRecorder(map[string]apis.Proc{"createInstanceFn": 0x10})
	s := strategy.NewLoaderStrategy(r.resolve)

	p, ok := s.TryResolve("createInstanceFn")
	assert.True(t, ok)
	assert.Equal(t, apis.Proc(0x10), p)

	p, ok = s.TryResolve("unknown")
	assert.False(t, ok)
	assert.Zero(t, p)

	assert.Equal(t, []apis.Handle{0, 0}, r.ctxs)
}

func TestInstanceStrategy_BindsHandle(t *testing.T) {
	r := newRecorder(map[string]apis.Proc{"getDeviceProcFn": 0x20})
	s := strategy.NewInstanceStrategy(r.resolve, 0xA1)

	p, ok := s.TryResolve("getDeviceProcFn")
	assert.True(t, ok)
	assert.Equal(t, apis.Proc(0x20), p)
	assert.Equal(t, []apis.Handle{0xA1}, r.ctxs)

	// a null instance is still passed through
	s0 := strategy.NewInstanceStrategy(r.resolve, 0)
	_, ok = s0.TryResolve("getDeviceProcFn")
	assert.True(t, ok)
}

func TestDeviceStrategy_NullDeviceNeverResolves(t *testing.T) {
	r := newRecorder(map[string]apis.Proc{"deviceFnA": 0x30})

	_, ok := strategy.NewDeviceStrategy(r.resolve, 0).TryResolve("deviceFnA")
	assert.False(t, ok)
	assert.Empty(t, r.ctxs, "getter must not be called with a null device")

	p, ok := strategy.NewDeviceStrategy(r.resolve, 0xD1).TryResolve("deviceFnA")
	assert.True(t, ok)
	assert.Equal(t, apis.Proc(0x30), p)
	assert.Equal(t, []apis.Handle{0xD1}, r.ctxs)
}

func TestStrategies_NilGetterAndEmptyName(t *testing.T) {
	all := []apis.Strategy{
		strategy.NewLoaderStrategy(nil),
		strategy.NewInstanceStrategy(nil, 1),
		strategy.NewDeviceStrategy(nil, 1),
		strategy.NewFuncStrategy(nil, 1),
	}
	for _, s := range all {
		p, ok := s.TryResolve("anything")
		assert.False(t, ok)
		assert.Zero(t, p)
	}

	r := newRecorder(nil)
	_, ok := strategy.NewFuncStrategy(r.resolve, 7).TryResolve("")
	assert.False(t, ok)
	assert.Empty(t, r.ctxs)
}

func TestFuncStrategy(t *testing.T) {
	r := newRecorder(map[string]apis.Proc{"x": 0x40})
	p, ok := strategy.NewFuncStrategy(r.resolve, 7).TryResolve("x")
	assert.True(t, ok)
	assert.Equal(t, apis.Proc(0x40), p)
	assert.Equal(t, []apis.Handle{7}, r.ctxs)
}
