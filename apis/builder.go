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

// Builder composes Registry and scope Resolvers from a Config.
type Builder interface {
	// BuildRegistry compiles the catalog's guards against cfg and returns the
	// resulting registry.
	BuildRegistry(cfg Config, cat *Catalog) (Registry, error)
	// BuildResolver chains strategies for scope s. The builder owns scope
	// policy such as whether device resolution may fall back to the instance.
	BuildResolver(cfg Config, s Scope, chain ...Strategy) Resolver
}
