/*
 * Copyright 2026 The exjson Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package exjson

// bindingNode is one entry of an Env's binding list. Envs are expected
// to hold few names (lambda parameter lists, a handful of defines) so
// a linked list outperforms setting up a map per frame, matching
// original_source/src/exjson.c's env_frame array-of-pairs layout.
type bindingNode struct {
	name  []byte
	value *Value
	next  *bindingNode
}

// Env is a lexical scope frame: a list of name/value bindings and a
// pointer to the enclosing scope. Grounded on
// original_source/src/exjson.c's env_frame / exjson_env_* family.
//
// Closures capture the Env active at the point lambda was evaluated
// (see Closure.Env in value.go), giving exJSON lexical scoping. The
// original C source instead built the child frame for a call from the
// *calling* env, a dynamic-scoping bug documented in DESIGN.md's open
// question #1; this package deliberately does not reproduce it.
type Env struct {
	head   *bindingNode
	Parent *Env
}

// NewEnv returns a fresh, empty Env chained to parent. parent may be
// nil for the global scope.
func NewEnv(parent *Env) *Env {
	return &Env{Parent: parent}
}

// NewGlobalEnv returns the root Env pre-populated with no bindings;
// eval.go's builtinDispatch intercepts built-in names before any Env
// lookup happens, so the global Env itself starts empty, matching
// exjson_create_global_env (which also starts from an empty frame —
// the C source's builtins are likewise hardcoded dispatch, not
// bindings).
func NewGlobalEnv() *Env {
	return &Env{}
}

// Define creates or overwrites a binding in this exact frame (not the
// enclosing chain), matching the `define` special form.
func (e *Env) Define(name []byte, value *Value) {
	for n := e.head; n != nil; n = n.next {
		if string(n.name) == string(name) {
			n.value = value
			return
		}
	}
	e.head = &bindingNode{name: name, value: value, next: e.head}
}

// Lookup searches this frame and its ancestors for name.
func (e *Env) Lookup(name []byte) (*Value, bool) {
	for env := e; env != nil; env = env.Parent {
		for n := env.head; n != nil; n = n.next {
			if string(n.name) == string(name) {
				return n.value, true
			}
		}
	}
	return nil, false
}

// Set rebinds an existing name in the nearest frame that defines it,
// matching the `set!` special form. It reports false if name is
// undefined anywhere in the chain, leaving no frame modified.
func (e *Env) Set(name []byte, value *Value) bool {
	for env := e; env != nil; env = env.Parent {
		for n := env.head; n != nil; n = n.next {
			if string(n.name) == string(name) {
				n.value = value
				return true
			}
		}
	}
	return false
}
