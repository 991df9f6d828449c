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

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// exprEngine compiles guards with github.com/expr-lang/expr.
type exprEngine struct {
	env map[string]any
}

func newExprEngine(features []string) *exprEngine {
	env := make(map[string]any, len(features))
	for _, f := range features {
		env[f] = false
	}
	return &exprEngine{env: env}
}

func (e *exprEngine) Name() string { return "expr" }

func (e *exprEngine) Compile(src string) (Program, error) {
	program, err := exprlang.Compile(src, exprlang.Env(e.env), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("pfx(guard): expr %q: %w", src, err)
	}
	return &exprProgram{program: program, env: e.env}, nil
}

type exprProgram struct {
	program *exprvm.Program
	env     map[string]any
}

func (p *exprProgram) Eval(enabled map[string]bool) (bool, error) {
	vars := make(map[string]any, len(p.env))
	for name := range p.env {
		vars[name] = enabled[name]
	}
	out, err := exprlang.Run(p.program, vars)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, ErrNotBool
	}
	return b, nil
}
