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

package reflect

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TagKey is the struct tag that names the entry point a field holds.
const TagKey = "pfx"

// MaxUnwrap bounds how many pointer levels Normalize follows.
const MaxUnwrap = 4

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotStruct indicates that the provided type (after unwrapping
	// pointers) is not a struct.
	ErrReflectNotStruct = errors.New("reflect: type is not a struct")
)

// Normalize unwraps pointers (at most MaxUnwrap levels) and returns the
// struct type underneath, or an error if there is none.
func Normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Ptr && i < MaxUnwrap; i++ {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrReflectNotStruct
	}
	return t, nil
}

// EntryName reports the entry-point name a struct field binds to.
//
// Naming policy:
//   - `pfx:"-"`        -> skipped
//   - `pfx:"name"`     -> name
//   - unexported field -> skipped
//   - otherwise the field name with its first rune lowered,
//     so VkCreateInstance binds to vkCreateInstance.
func EntryName(f reflect.StructField) (string, bool) {
	tag, tagged := f.Tag.Lookup(TagKey)
	if tagged {
		tag, _, _ = strings.Cut(tag, ",")
		if tag == "-" {
			return "", false
		}
	}
	if !f.IsExported() {
		return "", false
	}
	if tag != "" {
		return tag, true
	}
	return lowerFirst(f.Name), true
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
