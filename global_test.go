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

package pfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/pfx"
	"dirpx.dev/pfx/apis"
)

// useDefault installs l as the process-wide loader for the test.
func useDefault(t *testing.T, l *pfx.Loader) {
	t.Helper()
	require.NoError(t, pfx.SetDefault(l))
	t.Cleanup(func() {
		fresh, err := pfx.New()
		require.NoError(t, err)
		_ = pfx.SetDefault(fresh)
	})
}

func TestDefault_Lazy(t *testing.T) {
	l := pfx.Default()
	require.NotNil(t, l)
	assert.Same(t, l, pfx.Default())
	assert.ErrorIs(t, pfx.SetDefault(nil), pfx.ErrNilLoader)
	assert.Same(t, l, pfx.Default())
}

func TestGlobal_Lifecycle(t *testing.T) {
	d := fullDriver()
	useDefault(t, d.newLoader(t))

	require.NoError(t, pfx.Initialize())
	assert.Equal(t, apis.MakeVersion(0, 1, 3, 0), pfx.APIVersion())
	require.NoError(t, pfx.AdoptInstance(0x1))
	require.NoError(t, pfx.AdoptDevice(0xD1))
	assert.Equal(t, apis.Handle(0x1), pfx.CurrentInstance())
	assert.Equal(t, apis.Handle(0xD1), pfx.CurrentDevice())
	assert.Equal(t, apis.Proc(0xD1<<8|9), pfx.Proc("deviceFnA"))

	var df DeviceFns
	require.NoError(t, pfx.PopulateTable(apis.ScopeDevice, 0xD2, &df))
	assert.Equal(t, apis.Proc(0xD2<<8|9), df.DeviceFnA)

	require.NoError(t, pfx.AdoptInstanceOnly(0x2))
	assert.Equal(t, apis.Handle(0x2), pfx.CurrentInstance())

	require.NoError(t, pfx.Finalize())
	assert.Zero(t, pfx.CurrentInstance())
	assert.Zero(t, pfx.Proc("deviceFnA"))
	require.NoError(t, pfx.Finalize())
}

func TestGlobal_ReplacingFinalizesPrevious(t *testing.T) {
	d := fullDriver()
	useDefault(t, d.newLoader(t))
	require.NoError(t, pfx.Initialize())

	require.NoError(t, pfx.Configure(d.options(t)...))
	_, closes := d.counts()
	assert.Equal(t, 1, closes)
	assert.Equal(t, pfx.Uninitialized, pfx.Default().State())

	pfx.InitializeWithResolver(func(apis.Handle, string) apis.Proc { return 0x5 })
	assert.Equal(t, apis.Proc(0x5), pfx.Proc("createInstanceFn"))
}
