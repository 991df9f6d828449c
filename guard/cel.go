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

package guard

import (
	"fmt"

	celgo "github.com/google/cel-go/cel"
)

// celEngine compiles guards with github.com/google/cel-go.
type celEngine struct {
	env      *celgo.Env
	features []string
}

func newCELEngine(features []string) (*celEngine, error) {
	opts := make([]celgo.EnvOption, 0, len(features))
	for _, f := range features {
		opts = append(opts, celgo.Variable(f, celgo.BoolType))
	}
	env, err := celgo.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("pfx(guard): cel env: %w", err)
	}
	return &celEngine{env: env, features: append([]string{}, features...)}, nil
}

func (e *celEngine) Name() string { return "cel" }

func (e *celEngine) Compile(src string) (Program, error) {
	ast, issues := e.env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("pfx(guard): cel %q: %w", src, issues.Err())
	}
	if !ast.OutputType().IsExactType(celgo.BoolType) {
		return nil, fmt.Errorf("%w: %q", ErrNotBool, src)
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("pfx(guard): cel %q: %w", src, err)
	}
	return &celProgram{program: prg, features: e.features}, nil
}

type celProgram struct {
	program  celgo.Program
	features []string
}

func (p *celProgram) Eval(enabled map[string]bool) (bool, error) {
	vars := make(map[string]any, len(p.features))
	for _, name := range p.features {
		vars[name] = enabled[name]
	}
	out, _, err := p.program.Eval(vars)
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, ErrNotBool
	}
	return b, nil
}
