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

package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/pfx/guard"
)

var features = []string{
	"VK_VERSION_1_0",
	"VK_VERSION_1_1",
	"VK_KHR_swapchain",
	"VK_KHR_device_group",
	"VK_KHR_surface",
}

func engines(t *testing.T) []guard.Engine {
	t.Helper()
	var out []guard.Engine
	for _, name := range []string{"expr", "cel"} {
		e, err := guard.New(name, features)
		require.NoError(t, err, name)
		require.Equal(t, name, e.Name())
		out = append(out, e)
	}
	return out
}

func TestEval(t *testing.T) {
	cases := []struct {
		src     string
		enabled map[string]bool
		want    bool
	}{
		{"VK_VERSION_1_0", map[string]bool{"VK_VERSION_1_0": true}, true},
		{"VK_VERSION_1_1", map[string]bool{"VK_VERSION_1_0": true}, false},
		{"VK_VERSION_1_1 || VK_KHR_swapchain", map[string]bool{"VK_KHR_swapchain": true}, true},
		{"!VK_VERSION_1_1", map[string]bool{}, true},
		{
			"(VK_KHR_swapchain && VK_VERSION_1_1) || (VK_KHR_device_group && VK_KHR_surface)",
			map[string]bool{"VK_KHR_device_group": true, "VK_KHR_surface": true},
			true,
		},
		{
			"(VK_KHR_swapchain && VK_VERSION_1_1) || (VK_KHR_device_group && VK_KHR_surface)",
			map[string]bool{"VK_KHR_swapchain": true, "VK_KHR_surface": true},
			false,
		},
	}
	for _, e := range engines(t) {
		for _, tc := range cases {
			p, err := e.Compile(tc.src)
			require.NoError(t, err, "%s: %s", e.Name(), tc.src)
			got, err := p.Eval(tc.enabled)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%s: %s", e.Name(), tc.src)
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, e := range engines(t) {
		_, err := e.Compile("")
		assert.ErrorIs(t, err, guard.ErrEmptyGuard, e.Name())

		_, err = e.Compile("VK_EXT_not_declared")
		assert.Error(t, err, "%s: undeclared identifier must not compile", e.Name())

		_, err = e.Compile("VK_VERSION_1_0 &&")
		assert.Error(t, err, e.Name())
	}
}

func TestCompile_Memoised(t *testing.T) {
	e, err := guard.New("expr", features)
	require.NoError(t, err)
	a, err := e.Compile("VK_VERSION_1_0")
	require.NoError(t, err)
	b, err := e.Compile("  VK_VERSION_1_0 ")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestNew_UnknownEngine(t *testing.T) {
	_, err := guard.New("goja", features)
	assert.ErrorIs(t, err, guard.ErrUnknownEngine)
}

func TestEnabled(t *testing.T) {
	all, err := guard.Enabled(features, nil, nil)
	require.NoError(t, err)
	for _, f := range features {
		assert.True(t, all[f], f)
	}

	some, err := guard.Enabled(features, []string{"VK_VERSION_1_0", "VK_KHR_surface"}, []string{"VK_KHR_surface"})
	require.NoError(t, err)
	assert.True(t, some["VK_VERSION_1_0"])
	assert.False(t, some["VK_KHR_surface"])
	assert.False(t, some["VK_VERSION_1_1"])

	none, err := guard.Enabled(features, []string{}, nil)
	require.NoError(t, err)
	assert.False(t, none["VK_VERSION_1_0"])

	_, err = guard.Enabled(features, []string{"VK_NV_nope"}, nil)
	assert.ErrorIs(t, err, guard.ErrUnknownFeature)
}
