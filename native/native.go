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

// Package native is the only place where resolved function pointers are
// called or turned into typed Go functions.
//
// Getter wraps a C "get proc address" function with the shape
//
//	PFN_vkVoidFunction getProcAddr(void* ctx, const char* name);
//
// and Version wraps
//
//	int32_t enumerateVersion(uint32_t* out);
//
// Bind coerces any other resolved Proc into a caller-declared Go func type.
package native

import (
	"dirpx.dev/pfx/apis"
)

// success is the native "no error" result code.
const success = 0

// Invoker returns the platform apis.Invoker.
func Invoker() apis.Invoker {
	return invoker{}
}

// invoker calls native getters through the platform FFI.
type invoker struct{}

// Ensure invoker implements apis.Invoker.
var _ apis.Invoker = invoker{}

// nothing resolves no names.
func nothing(apis.Handle, string) apis.Proc { return 0 }

// Getter wraps get into a ResolveFunc.
func (invoker) Getter(get apis.Proc) apis.ResolveFunc {
	if !get.Valid() || !supported {
		return nothing
	}
	call := registerGetter(get)
	return func(ctx apis.Handle, name string) apis.Proc {
		if name == "" {
			return 0
		}
		return apis.Proc(call(uintptr(ctx), name))
	}
}

// Version calls enumerate and reports the version it wrote.
func (invoker) Version(enumerate apis.Proc) (apis.Version, bool) {
	if !enumerate.Valid() || !supported {
		return 0, false
	}
	var out uint32
	if rc := registerVersion(enumerate)(&out); rc != success {
		return 0, false
	}
	return apis.Version(out), true
}

// Bind coerces p into the function pointed to by fptr, which must be a
// pointer to a func variable whose signature matches the native entry point.
// It reports false and leaves *fptr untouched when p is 0.
func Bind[F any](fptr *F, p apis.Proc) bool {
	if fptr == nil || !p.Valid() || !supported {
		return false
	}
	registerFunc(fptr, p)
	return true
}
