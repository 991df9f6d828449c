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

// Command pfx-gen writes per-scope dispatch table structs from a registry
// file, one apis.Proc field per entry point.
//
//	pfx-gen -registry registry.yaml -output tables_gen.go -package catalog
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"dirpx.dev/pfx/catalog"
)

func main() {
	registryPath := flag.String("registry", "", "Path to the registry YAML")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "catalog", "Package name of the generated file")
	flag.Parse()

	if *registryPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: pfx-gen -registry <path> -output <path> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*registryPath, *outputPath, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(registryPath, outputPath, pkg string) error {
	cat, err := catalog.Load(registryPath)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	code, err := Generate(cat, pkg, filepath.Base(registryPath))
	if err != nil {
		return fmt.Errorf("generating tables: %w", err)
	}
	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s\n", outputPath)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
