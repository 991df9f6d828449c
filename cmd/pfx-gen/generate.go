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

package main

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/pfx/apis"
)

var funcMap = template.FuncMap{
	"fieldName": fieldName,
	"quote":     func(s string) string { return fmt.Sprintf("%q", s) },
}

var tablesTmpl = template.Must(template.New("tables").Funcs(funcMap).Parse(`// Code generated by pfx-gen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "dirpx.dev/pfx/apis"
{{range .Tables}}
// {{.Name}} holds {{.Scope}}-scope entry points.
type {{.Name}} struct {
{{- range .Entries}}
	{{fieldName .Name}} apis.Proc ` + "`pfx:{{quote .Name}}`" + `
{{- end}}
}
{{end}}`))

type tablesData struct {
	Source  string
	Package string
	Tables  []tableData
}

type tableData struct {
	Name    string
	Scope   apis.Scope
	Entries []apis.Declaration
}

// tableNames maps each scope to its generated struct.
var tableNames = [...]string{
	apis.ScopeLoader:   "LoaderTable",
	apis.ScopeInstance: "InstanceTable",
	apis.ScopeDevice:   "DeviceTable",
}

// Generate renders one struct per scope holding every declared entry of
// that scope in declaration order.
func Generate(cat *apis.Catalog, pkg, source string) (string, error) {
	if cat == nil {
		return "", errors.New("nil catalog")
	}
	data := tablesData{Source: source, Package: pkg}
	for _, s := range apis.Scopes {
		td := tableData{Name: tableNames[s], Scope: s}
		for _, d := range cat.Entries {
			if d.Scope == s {
				td.Entries = append(td.Entries, d)
			}
		}
		data.Tables = append(data.Tables, td)
	}

	var b strings.Builder
	if err := tablesTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template %s: %w", tablesTmpl.Name(), err)
	}
	return b.String(), nil
}

// fieldName exports an entry name: "vkCreateInstance" -> "VkCreateInstance".
func fieldName(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[n:]
}
