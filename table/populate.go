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

package table

import (
	"go.uber.org/zap"

	"dirpx.dev/pfx/apis"
)

// Populate walks the enabled entries of scope in declaration order, asks res
// for each one and stores the result (Null included) into dst. Entries of
// other scopes are not touched. A nil res leaves every targeted slot Null.
// It returns the number of slots that received a non-Null pointer.
func Populate(reg apis.Registry, scope apis.Scope, res apis.Resolver, dst Slots) int {
	if reg == nil || dst == nil {
		return 0
	}
	log := Logger()
	var resolved, missing int
	for _, e := range reg.Scope(scope) {
		var p apis.Proc
		if res != nil {
			p = res.Resolve(e.Name)
		}
		if !dst.Store(e, p) {
			continue
		}
		if p.Valid() {
			resolved++
			continue
		}
		missing++
		if ce := log.Check(zap.DebugLevel, "entry point unavailable"); ce != nil {
			ce.Write(zap.String("entry", e.Name), zap.Stringer("scope", scope))
		}
	}
	log.Debug("scope populated",
		zap.Stringer("scope", scope),
		zap.Int("resolved", resolved),
		zap.Int("missing", missing),
	)
	return resolved
}
