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

package apis

// Library is an opened native library.
type Library interface {
	// Symbol returns the address of the exported symbol name.
	Symbol(name string) (Proc, error)
	// Close unloads the library. Every Proc obtained from it becomes invalid.
	Close() error
}

// Opener opens the first loadable library from a list of candidate paths.
type Opener func(paths []string) (Library, error)

// Invoker is the boundary where native code is called: it wraps a resolved
// "get proc address" entry point into a ResolveFunc and calls the native
// "enumerate version" entry point.
type Invoker interface {
	// Getter returns a ResolveFunc that calls get(ctx, name).
	// A zero get yields a ResolveFunc that resolves nothing.
	Getter(get Proc) ResolveFunc
	// Version calls enumerate and reports the version it wrote.
	Version(enumerate Proc) (Version, bool)
}
