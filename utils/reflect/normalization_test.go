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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	uref "dirpx.dev/pfx/utils/reflect"
)

// Local test types.
type A struct{}

type table struct {
	VkCreateInstance uintptr
	Tagged           uintptr `pfx:"vkDestroyInstance"`
	Skipped          uintptr `pfx:"-"`
	Options          uintptr `pfx:"vkQueueSubmit,omitempty"`
	private          uintptr
	lower            uintptr `pfx:"vkHidden"`
	ÄUnicode         uintptr
}

func TestNormalize_Pointers(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
	}{
		{"plain", reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{})},
		{"ptrptr", reflect.TypeOf((**A)(nil))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != reflect.TypeOf(A{}) {
				t.Fatalf("Normalize(%v) = %v, want A", tc.typ, got)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: got %v", err)
	}
	for _, typ := range []reflect.Type{
		reflect.TypeOf(0),
		reflect.TypeOf([]A{}),
		reflect.TypeOf(map[string]A{}),
		reflect.TypeOf((*****A)(nil)),
	} {
		if _, err := uref.Normalize(typ); !errors.Is(err, uref.ErrReflectNotStruct) {
			t.Fatalf("Normalize(%v): got %v, want ErrReflectNotStruct", typ, err)
		}
	}
}

func TestEntryName(t *testing.T) {
	want := map[string]struct {
		name string
		ok   bool
	}{
		"VkCreateInstance": {"vkCreateInstance", true},
		"Tagged":           {"vkDestroyInstance", true},
		"Skipped":          {"", false},
		"Options":          {"vkQueueSubmit", true},
		"private":          {"", false},
		"lower":            {"", false},
		"ÄUnicode":         {"äUnicode", true},
	}

	typ := reflect.TypeOf(table{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name, ok := uref.EntryName(f)
		w := want[f.Name]
		if name != w.name || ok != w.ok {
			t.Fatalf("EntryName(%s) = (%q,%v), want (%q,%v)", f.Name, name, ok, w.name, w.ok)
		}
	}
}

// Normalize and EntryName are pure; this smoke-tests them under contention.
func TestNormalize_Concurrent(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf(table{}),
		reflect.TypeOf(&table{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	iters := 2000

	var wg sync.WaitGroup
	wg.Add(workers)

	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				rt, err := uref.Normalize(types[i%len(types)])
				if err != nil {
					errCh <- err
					return
				}
				if rt.Kind() != reflect.Struct {
					errCh <- errors.New("got non-struct type")
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatal(e)
	}
}

func BenchmarkEntryName(b *testing.B) {
	typ := reflect.TypeOf(table{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = uref.EntryName(typ.Field(i % typ.NumField()))
	}
}
