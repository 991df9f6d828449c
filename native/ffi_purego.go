//go:build darwin || freebsd || linux || netbsd || windows

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

package native

import (
	"github.com/ebitengine/purego"

	"dirpx.dev/pfx/apis"
)

const supported = true

func registerGetter(get apis.Proc) func(ctx uintptr, name string) uintptr {
	var fn func(ctx uintptr, name string) uintptr
	purego.RegisterFunc(&fn, uintptr(get))
	return fn
}

func registerVersion(enumerate apis.Proc) func(out *uint32) int32 {
	var fn func(out *uint32) int32
	purego.RegisterFunc(&fn, uintptr(enumerate))
	return fn
}

func registerFunc(fptr any, p apis.Proc) {
	purego.RegisterFunc(fptr, uintptr(p))
}
