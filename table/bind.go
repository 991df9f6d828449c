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
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/pfx/apis"
	uref "dirpx.dev/pfx/utils/reflect"
)

// ErrNotStructPointer is returned by Bind for anything but a non-nil
// pointer to a struct.
var ErrNotStructPointer = errors.New("pfx(table): destination must be a non-nil struct pointer")

var procType = reflect.TypeOf((*apis.Proc)(nil)).Elem()

// layouts memoises entry name -> field index per struct type.
var layouts sync.Map // map[reflect.Type]map[string]int

// Bind adapts the struct pointed to by dst into Slots. Every exported
// apis.Proc field is a slot; see uref.EntryName for how fields map to
// entry names. Values that already implement Slots are returned as is.
func Bind(dst any) (Slots, error) {
	if s, ok := dst.(Slots); ok {
		return s, nil
	}
	if dst == nil {
		return nil, ErrNotStructPointer
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr {
		return nil, ErrNotStructPointer
	}
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, ErrNotStructPointer
		}
		v = v.Elem()
	}
	if _, err := uref.Normalize(v.Type()); err != nil {
		return nil, ErrNotStructPointer
	}
	return bound{v: v, fields: layoutOf(v.Type())}, nil
}

func layoutOf(t reflect.Type) map[string]int {
	if l, ok := layouts.Load(t); ok {
		return l.(map[string]int)
	}
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type != procType {
			continue
		}
		if name, ok := uref.EntryName(f); ok {
			if _, dup := fields[name]; !dup {
				fields[name] = i
			}
		}
	}
	l, _ := layouts.LoadOrStore(t, fields)
	return l.(map[string]int)
}

// bound writes into the fields of a caller-owned struct.
type bound struct {
	v      reflect.Value
	fields map[string]int
}

// Store implements Slots.
func (b bound) Store(e apis.Entry, p apis.Proc) bool {
	i, ok := b.fields[e.Name]
	if !ok {
		return false
	}
	b.v.Field(i).SetUint(uint64(p))
	return true
}
