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

import "fmt"

// Version is a packed API version: variant in bits 29-31, major in 22-28,
// minor in 12-21 and patch in 0-11.
type Version uint32

// MakeVersion packs a version number.
func MakeVersion(variant, major, minor, patch uint32) Version {
	return Version(variant<<29 | (major&0x7f)<<22 | (minor&0x3ff)<<12 | patch&0xfff)
}

// Variant returns the variant field.
func (v Version) Variant() uint32 { return uint32(v) >> 29 }

// Major returns the major version.
func (v Version) Major() uint32 { return (uint32(v) >> 22) & 0x7f }

// Minor returns the minor version.
func (v Version) Minor() uint32 { return (uint32(v) >> 12) & 0x3ff }

// Patch returns the patch version.
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

// String formats v as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// ParseVersion parses "major.minor" or "major.minor.patch".
func ParseVersion(s string) (Version, error) {
	var major, minor, patch uint32
	n, err := fmt.Sscanf(s, "%d.%d.%d", &major, &minor, &patch)
	if n < 2 {
		if err == nil {
			err = fmt.Errorf("too few components")
		}
		return 0, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return MakeVersion(0, major, minor, patch), nil
}
