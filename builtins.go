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

import (
	"strconv"
)

// numberOf parses a TagNumber Value's raw lexeme to a float64. exJSON
// arithmetic is untyped double math throughout, matching
// exjson_ref_to_string + strtod in the original source.
func numberOf(v *Value) (float64, bool) {
	if v.Tag != TagNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v.Scalar), 64)
	return f, err == nil
}

// numberValue formats f the way the C source's "%g" snprintf did:
// strconv.FormatFloat with 'g' and precision 6 is the same format (six
// significant digits, trailing zeros dropped, exponent form below 1e-4
// and from 1e6 up), without reimplementing double-to-string by hand.
func numberValue(f float64) *Value {
	return &Value{Tag: TagNumber, Scalar: []byte(strconv.FormatFloat(f, 'g', 6, 64)), Owned: true}
}

func arrayItems(v *Value) []*Value {
	var out []*Value
	for n := v.Head; n != nil; n = n.Next {
		out = append(out, n.Item)
	}
	return out
}

// builtinAdd implements +, summing its arguments; zero arguments sums
// to 0, matching the original's while-loop-over-empty-list behavior.
func builtinAdd(args []*Value) *Value {
	sum := 0.0
	for _, a := range args {
		f, ok := numberOf(a)
		if !ok {
			return errorValue("+: all arguments must be numbers")
		}
		sum += f
	}
	return numberValue(sum)
}

// builtinSub implements -: one argument negates it, more than one
// subtracts the rest from the first.
func builtinSub(args []*Value) *Value {
	if len(args) == 0 {
		return errorValue("-: requires at least one argument")
	}
	result, ok := numberOf(args[0])
	if !ok {
		return errorValue("-: all arguments must be numbers")
	}
	if len(args) == 1 {
		return numberValue(-result)
	}
	for _, a := range args[1:] {
		f, ok := numberOf(a)
		if !ok {
			return errorValue("-: all arguments must be numbers")
		}
		result -= f
	}
	return numberValue(result)
}

// builtinMul implements *; zero arguments multiplies to 1.
func builtinMul(args []*Value) *Value {
	product := 1.0
	for _, a := range args {
		f, ok := numberOf(a)
		if !ok {
			return errorValue("*: all arguments must be numbers")
		}
		product *= f
	}
	return numberValue(product)
}

// builtinDiv implements /: one argument inverts it (1/x), more than
// one divides the first by each of the rest in turn.
func builtinDiv(args []*Value) *Value {
	if len(args) == 0 {
		return errorValue("/: requires at least one argument")
	}
	result, ok := numberOf(args[0])
	if !ok {
		return errorValue("/: all arguments must be numbers")
	}
	if len(args) == 1 {
		if result == 0 {
			return errorValue("/: division by zero")
		}
		return numberValue(1.0 / result)
	}
	for _, a := range args[1:] {
		f, ok := numberOf(a)
		if !ok {
			return errorValue("/: all arguments must be numbers")
		}
		if f == 0 {
			return errorValue("/: division by zero")
		}
		result /= f
	}
	return numberValue(result)
}

// builtinEq implements = as structural equality over exactly 2
// arguments, matching json_equal.
func builtinEq(args []*Value) *Value {
	if len(args) != 2 {
		return errorValue("=: requires 2 arguments")
	}
	return Bool(Equal(args[0], args[1]))
}

func builtinLt(args []*Value) *Value {
	if len(args) != 2 {
		return errorValue("<: requires 2 arguments")
	}
	a, ok1 := numberOf(args[0])
	b, ok2 := numberOf(args[1])
	if !ok1 || !ok2 {
		return errorValue("<: arguments must be numbers")
	}
	return Bool(a < b)
}

func builtinGt(args []*Value) *Value {
	if len(args) != 2 {
		return errorValue(">: requires 2 arguments")
	}
	a, ok1 := numberOf(args[0])
	b, ok2 := numberOf(args[1])
	if !ok1 || !ok2 {
		return errorValue(">: arguments must be numbers")
	}
	return Bool(a > b)
}

// builtinCons implements cons: if the second argument is a list,
// prepend the first onto it by sharing its existing node chain (not
// copying the tail), matching the C source's new_node->next =
// rest->u.array.items aliasing; otherwise the result is a one-element
// list (dotted pairs are not represented, matching the original's
// fallback branch for a non-list second argument).
func builtinCons(args []*Value) *Value {
	if len(args) != 2 {
		return errorValue("cons: requires 2 arguments")
	}
	result := &Value{Tag: TagArray}
	node := AllocArrayNode()
	node.Item = Copy(args[0])
	if args[1].Tag == TagArray {
		node.Next = args[1].Head
	}
	result.Head = node
	result.Tail = node
	for n := node; n.Next != nil; n = n.Next {
		result.Tail = n.Next
	}
	return result
}

func builtinCar(args []*Value) *Value {
	if len(args) != 1 {
		return errorValue("car: requires one argument")
	}
	list := args[0]
	if list.Tag != TagArray || list.Head == nil {
		return errorValue("car: argument must be non-empty list")
	}
	return Copy(list.Head.Item)
}

func builtinCdr(args []*Value) *Value {
	if len(args) != 1 {
		return errorValue("cdr: requires one argument")
	}
	list := args[0]
	if list.Tag != TagArray || list.Head == nil {
		return errorValue("cdr: argument must be non-empty list")
	}
	result := &Value{Tag: TagArray, Head: list.Head.Next}
	for n := result.Head; n != nil; n = n.Next {
		result.Tail = n
	}
	return result
}

// builtinList implements list: collect all arguments into a new list
// verbatim, matching exjson_builtin_list's exjson_copy_value(args).
func builtinList(args []*Value) *Value {
	result := &Value{Tag: TagArray}
	for _, a := range args {
		result.AppendArray(Copy(a))
	}
	return result
}

// builtinNullP implements null?: true for J_NULL or an empty list.
func builtinNullP(args []*Value) *Value {
	if len(args) != 1 {
		return errorValue("null?: requires one argument")
	}
	v := args[0]
	return Bool(v.Tag == TagNull || (v.Tag == TagArray && v.Head == nil))
}

// builtinLength implements length over arrays and strings.
func builtinLength(args []*Value) *Value {
	if len(args) != 1 {
		return errorValue("length: requires one argument")
	}
	v := args[0]
	if v.Tag != TagArray && v.Tag != TagString {
		return errorValue("length: argument must be array or string")
	}
	return numberValue(float64(v.Len()))
}

// builtinGetValue implements get-value: object field lookup by string
// key, returning Null (not an error) when the key is absent.
func builtinGetValue(args []*Value) *Value {
	if len(args) != 2 {
		return errorValue("get-value: requires 2 arguments")
	}
	obj, key := args[0], args[1]
	if obj.Tag != TagObject {
		return errorValue("get-value: first argument must be object")
	}
	if key.Tag != TagString {
		return errorValue("get-value: second argument must be string")
	}
	if v, ok := obj.GetObject(key.Scalar); ok {
		return Copy(v)
	}
	return Null()
}

// builtinHasKey implements has-key?.
func builtinHasKey(args []*Value) *Value {
	if len(args) != 2 {
		return errorValue("has-key?: requires 2 arguments")
	}
	obj, key := args[0], args[1]
	if obj.Tag != TagObject {
		return errorValue("has-key?: first argument must be object")
	}
	if key.Tag != TagString {
		return errorValue("has-key?: second argument must be string")
	}
	_, ok := obj.GetObject(key.Scalar)
	return Bool(ok)
}

// builtinStringAppend implements string-append: concatenates the raw
// bytes of every string argument.
func builtinStringAppend(args []*Value) *Value {
	total := 0
	for _, a := range args {
		if a.Tag != TagString {
			return errorValue("string-append: all arguments must be strings")
		}
		total += len(a.Scalar)
	}
	buf := make([]byte, 0, total)
	for _, a := range args {
		buf = append(buf, a.Scalar...)
	}
	return &Value{Tag: TagString, Scalar: buf, Owned: true}
}
