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

import "dirpx.dev/pfx/apis"

// TableOption configures a PopulateTable call.
type TableOption func(*tableOptions)

type tableOptions struct {
	instance    apis.Handle
	hasInstance bool
	get         apis.ResolveFunc
}

// WithInstance sets the owning instance of a device table. It defaults to
// the current instance.
func WithInstance(h apis.Handle) TableOption {
	return func(o *tableOptions) {
		o.instance = h
		o.hasInstance = true
	}
}

// WithInstanceResolver supplies the instance-scope resolver used instead of
// the loader's. It lets a device table be built without any adopted
// instance.
func WithInstanceResolver(r apis.ResolveFunc) TableOption {
	return func(o *tableOptions) {
		o.get = r
	}
}
