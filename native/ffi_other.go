//go:build !(darwin || freebsd || linux || netbsd || windows)

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

import "dirpx.dev/pfx/apis"

const supported = false

func registerGetter(apis.Proc) func(uintptr, string) uintptr { return nil }

func registerVersion(apis.Proc) func(*uint32) int32 { return nil }

func registerFunc(any, apis.Proc) {}
