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

import "testing"

func num(s string) *Value { return &Value{Tag: TagNumber, Scalar: []byte(s)} }
func str(s string) *Value { return &Value{Tag: TagString, Scalar: []byte(s)} }

func TestBuiltinConsWithList(t *testing.T) {
	list := &Value{Tag: TagArray}
	list.AppendArray(num("2"))
	list.AppendArray(num("3"))

	result := builtinCons([]*Value{num("1"), list})
	if result.Len() != 3 {
		t.Fatalf("want len 3, got %d", result.Len())
	}
	if string(result.Head.Item.Scalar) != "1" {
		t.Fatalf("want head 1, got %s", result.Head.Item.Scalar)
	}
}

func TestBuiltinConsWithNonList(t *testing.T) {
	result := builtinCons([]*Value{num("1"), num("2")})
	if result.Len() != 1 {
		t.Fatalf("want len 1 for a non-list second argument, got %d", result.Len())
	}
}

func TestBuiltinCarCdr(t *testing.T) {
	list := &Value{Tag: TagArray}
	list.AppendArray(num("1"))
	list.AppendArray(num("2"))
	list.AppendArray(num("3"))

	head := builtinCar([]*Value{list})
	if string(head.Scalar) != "1" {
		t.Fatalf("want car 1, got %s", head.Scalar)
	}
	tail := builtinCdr([]*Value{list})
	if tail.Len() != 2 {
		t.Fatalf("want cdr len 2, got %d", tail.Len())
	}
}

func TestBuiltinCarOfEmptyListIsError(t *testing.T) {
	empty := &Value{Tag: TagArray}
	if v := builtinCar([]*Value{empty}); !isError(v) {
		t.Fatal("expected error for car of empty list")
	}
}

func TestBuiltinNullP(t *testing.T) {
	if !builtinNullP([]*Value{Null()}).IsTruthy() {
		t.Fatal("null? of Null should be true")
	}
	if !builtinNullP([]*Value{{Tag: TagArray}}).IsTruthy() {
		t.Fatal("null? of empty array should be true")
	}
	if builtinNullP([]*Value{num("0")}).IsTruthy() {
		t.Fatal("null? of 0 should be false")
	}
}

func TestBuiltinLength(t *testing.T) {
	list := &Value{Tag: TagArray}
	list.AppendArray(num("1"))
	list.AppendArray(num("2"))
	if got := builtinLength([]*Value{list}); string(got.Scalar) != "2" {
		t.Fatalf("want length 2, got %s", got.Scalar)
	}
	if got := builtinLength([]*Value{str("hello")}); string(got.Scalar) != "5" {
		t.Fatalf("want length 5, got %s", got.Scalar)
	}
}

func TestBuiltinGetValueAndHasKey(t *testing.T) {
	obj := &Value{Tag: TagObject}
	obj.SetObject([]byte("k"), num("7"))

	v := builtinGetValue([]*Value{obj, str("k")})
	if string(v.Scalar) != "7" {
		t.Fatalf("want 7, got %s", v.Scalar)
	}
	missing := builtinGetValue([]*Value{obj, str("missing")})
	if missing.Tag != TagNull {
		t.Fatalf("want null for missing key, got %v", missing.Tag)
	}

	if !builtinHasKey([]*Value{obj, str("k")}).IsTruthy() {
		t.Fatal("has-key? should be true for present key")
	}
	if builtinHasKey([]*Value{obj, str("missing")}).IsTruthy() {
		t.Fatal("has-key? should be false for absent key")
	}
}

func TestBuiltinStringAppend(t *testing.T) {
	got := builtinStringAppend([]*Value{str("foo"), str("bar"), str("baz")})
	if string(got.Scalar) != "foobarbaz" {
		t.Fatalf("want foobarbaz, got %s", got.Scalar)
	}
}

func TestBuiltinArithmeticErrorsOnNonNumber(t *testing.T) {
	if v := builtinAdd([]*Value{num("1"), str("x")}); !isError(v) {
		t.Fatal("expected error adding a string")
	}
}

func TestBuiltinDivByZero(t *testing.T) {
	if v := builtinDiv([]*Value{num("1"), num("0")}); !isError(v) {
		t.Fatal("expected division by zero error")
	}
}
