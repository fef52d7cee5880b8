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

// Eval evaluates expr against env and returns the resulting Value.
// Eval never panics and never returns a Go error: evaluator failures
// are represented as an ordinary {"error": "<message>"} object
// (errors.go's errorValue/isError), so the function is total over any
// well-formed expr, matching exjson_eval's contract.
//
// Dispatch order, matching exjson_eval: special forms are checked by
// exact symbol name before anything else, then the fixed set of
// built-in operator names, then a generic lookup of the head symbol in
// env (ordinary function application), then — if the head is not a
// bare symbol at all — evaluating the head expression itself and
// applying whatever closure it produces.
func Eval(expr *Value, env *Env) *Value {
	if expr == nil {
		return errorValue("eval: nil expression")
	}
	switch expr.Tag {
	case TagNull, TagBoolean, TagNumber, TagString:
		return Copy(expr)
	case TagSymbol:
		v, ok := env.Lookup(expr.Scalar)
		if !ok {
			return errorValue("undefined variable")
		}
		return Copy(v)
	case TagArray:
		if expr.Head == nil {
			return Copy(expr)
		}
		return evalForm(expr, env)
	case TagObject:
		return Copy(expr)
	default:
		return errorValue("eval: unsupported type")
	}
}

func evalForm(expr *Value, env *Env) *Value {
	first := expr.Head.Item
	if first.Tag == TagSymbol {
		name := string(first.Scalar)
		switch name {
		case "quote":
			return evalQuote(expr)
		case "define":
			return evalDefine(expr, env)
		case "set!":
			return evalSet(expr, env)
		case "if":
			return evalIf(expr, env)
		case "lambda":
			return evalLambda(expr, env)
		case "case":
			return evalCase(expr, env)
		}
		if fn, ok := builtinDispatch[name]; ok {
			args, ok := evalArgs(expr, env)
			if !ok {
				return errorValue("%s: evaluation failed", name)
			}
			return fn(args)
		}
		if proc, ok := env.Lookup(first.Scalar); ok {
			args, ok := evalArgs(expr, env)
			if !ok {
				return errorValue("function application: failed to evaluate arguments")
			}
			return Apply(proc, args)
		}
	}

	proc := Eval(first, env)
	if isError(proc) {
		return proc
	}
	args, ok := evalArgs(expr, env)
	if !ok {
		return errorValue("function application: failed to evaluate arguments")
	}
	return Apply(proc, args)
}

// builtinDispatch maps the hardcoded operator names to their
// implementations, matching the literal per-name if-ladder in
// exjson_eval. "list" is included here even though the original C
// ladder never wires exjson_builtin_list into dispatch (dead code in
// the source); this package's evaluator exposes it, matching the
// built-in set named in the operation spec.
var builtinDispatch = map[string]func([]*Value) *Value{
	"+":             builtinAdd,
	"-":             builtinSub,
	"*":             builtinMul,
	"/":             builtinDiv,
	"=":             builtinEq,
	"<":             builtinLt,
	">":             builtinGt,
	"cons":          builtinCons,
	"car":           builtinCar,
	"cdr":           builtinCdr,
	"list":          builtinList,
	"null?":         builtinNullP,
	"length":        builtinLength,
	"get-value":     builtinGetValue,
	"has-key?":      builtinHasKey,
	"string-append": builtinStringAppend,
}

// evalArgs evaluates every element of expr after the head, in order.
// eval_list in the C source evaluates expr.items in full (head
// included) and lets call sites slice off items->next. Unlike the C
// source this does not evaluate the head twice: the head here is the literal expr.Head.Item, which
// Eval would resolve the same way whether or not a caller already
// inspected its symbol name, so skipping it outright is behavior
// preserving and avoids a wasted, possibly error-producing lookup.
func evalArgs(expr *Value, env *Env) ([]*Value, bool) {
	var args []*Value
	for n := expr.Head.Next; n != nil; n = n.Next {
		v := Eval(n.Item, env)
		if v == nil {
			return nil, false
		}
		args = append(args, v)
	}
	return args, true
}

func evalQuote(expr *Value) *Value {
	args := expr.Head.Next
	if args == nil {
		return errorValue("quote: requires one argument")
	}
	return Copy(args.Item)
}

func evalDefine(expr *Value, env *Env) *Value {
	args := expr.Head.Next
	if args == nil {
		return errorValue("define: requires at least 2 arguments")
	}
	first := args.Item
	switch first.Tag {
	case TagSymbol:
		if args.Next == nil {
			return errorValue("define: requires value")
		}
		value := Eval(args.Next.Item, env)
		if isError(value) {
			return value
		}
		env.Define(first.Scalar, value)
		return value
	case TagArray:
		if first.Head == nil || first.Head.Item.Tag != TagSymbol {
			return errorValue("define: function name must be symbol")
		}
		if args.Next == nil {
			return errorValue("define: requires body")
		}
		params := &Value{Tag: TagArray, Head: first.Head.Next}
		for n := params.Head; n != nil; n = n.Next {
			params.Tail = n
		}
		closure := &Value{Tag: TagClosure, Closure: &Closure{
			Params: arrayItems(params),
			Body:   args.Next.Item,
			Env:    env,
		}}
		env.Define(first.Head.Item.Scalar, closure)
		return closure
	default:
		return errorValue("define: invalid syntax")
	}
}

func evalSet(expr *Value, env *Env) *Value {
	args := expr.Head.Next
	if args == nil || args.Next == nil {
		return errorValue("set!: requires 2 arguments")
	}
	v := args.Item
	if v.Tag != TagSymbol {
		return errorValue("set!: first argument must be a symbol")
	}
	value := Eval(args.Next.Item, env)
	if isError(value) {
		return value
	}
	if !env.Set(v.Scalar, value) {
		return errorValue("set!: variable not defined")
	}
	return value
}

func evalIf(expr *Value, env *Env) *Value {
	args := expr.Head.Next
	if args == nil || args.Next == nil || args.Next.Next == nil {
		return errorValue("if: requires 3 arguments (condition then else)")
	}
	cond := Eval(args.Item, env)
	if isError(cond) {
		return cond
	}
	if cond.IsTruthy() {
		return Eval(args.Next.Item, env)
	}
	return Eval(args.Next.Next.Item, env)
}

// evalLambda builds a Closure that captures env, the environment
// active where lambda itself was evaluated — lexical scoping. The
// original C source's lambda carries no environment at all and
// exjson_apply instead builds the call frame from the *caller's* env,
// giving it dynamic scoping; this package deliberately diverges (see
// DESIGN.md's open question #1).
func evalLambda(expr *Value, env *Env) *Value {
	args := expr.Head.Next
	if args == nil || args.Next == nil {
		return errorValue("lambda: requires (params) and body")
	}
	params := args.Item
	if params.Tag != TagArray {
		return errorValue("lambda: params must be a list")
	}
	return &Value{Tag: TagClosure, Closure: &Closure{
		Params: arrayItems(params),
		Body:   args.Next.Item,
		Env:    env,
	}}
}

func evalCase(expr *Value, env *Env) *Value {
	args := expr.Head.Next
	if args == nil {
		return errorValue("case: requires key expression")
	}
	key := Eval(args.Item, env)
	if isError(key) {
		return key
	}
	for clause := args.Next; clause != nil; clause = clause.Next {
		c := clause.Item
		if c.Tag != TagArray || c.Head == nil {
			continue
		}
		pattern := c.Head.Item
		isElse := pattern.Tag == TagSymbol && string(pattern.Scalar) == "else"
		if isElse || Equal(key, pattern) {
			if c.Head.Next == nil {
				return errorValue("case: clause has no expression")
			}
			return Eval(c.Head.Next.Item, env)
		}
	}
	return errorValue("case: no matching clause")
}

// Apply invokes proc (a Closure) with already-evaluated args, binding
// parameters in a fresh frame chained to the closure's captured
// environment, matching exjson_apply's lambda branch.
func Apply(proc *Value, args []*Value) *Value {
	if proc == nil || proc.Tag != TagClosure {
		return errorValue("apply: not a function")
	}
	call := NewEnv(proc.Closure.Env)
	params := proc.Closure.Params
	for i := 0; i < len(params) && i < len(args); i++ {
		if params[i].Tag != TagSymbol {
			return errorValue("apply: parameter must be symbol")
		}
		call.Define(params[i].Scalar, args[i])
	}
	return Eval(proc.Closure.Body, call)
}
