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

// Catalog is the declarative source of the membership table, as read from a
// registry file.
type Catalog struct {
	// Features lists every feature-set identifier guards may reference.
	Features []string `yaml:"features"`
	// Entries lists entry points in declaration order.
	Entries []Declaration `yaml:"entries"`
}

// Declaration is one entry point as declared in a registry file.
type Declaration struct {
	Name      string `yaml:"name"`
	Scope     Scope  `yaml:"scope"`
	Guard     string `yaml:"guard"`
	Signature string `yaml:"signature"`
}
