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

// Package exjson implements a zero-copy JSON value tree and a small
// Lisp-family language ("exJSON") layered on top of it: JSON extended
// with parenthesized S-expressions evaluated against the same value
// model.
package exjson

import "bytes"

// Tag discriminates the active member of a Value.
type Tag uint8

const (
	// TagNull is a JSON null.
	TagNull Tag = iota + 1
	// TagBoolean is a JSON true/false.
	TagBoolean
	// TagNumber is an undecoded numeric lexeme.
	TagNumber
	// TagString is a raw (unescaped) string body.
	TagString
	// TagArray is an ordered sequence of values.
	TagArray
	// TagObject is an insertion-ordered key/value map.
	TagObject
	// TagSymbol is an exJSON identifier, lexically a slice-backed
	// name but evaluated by environment lookup rather than copied.
	TagSymbol
	// TagClosure is a callable value produced by lambda/define.
	TagClosure
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagBoolean:
		return "boolean"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagArray:
		return "array"
	case TagObject:
		return "object"
	case TagSymbol:
		return "symbol"
	case TagClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// ArrayNode is one element of an Array's singly-linked list. Item is
// a pointer (not an embedded Value) so that a container attached to
// its parent before it is fully populated — as the iterative parser
// in parse_iterative.go does — keeps seeing later appends made
// through any other reference to the same Value.
type ArrayNode struct {
	Item *Value
	Next *ArrayNode
}

// ObjectNode is one key/value entry of an Object's singly-linked
// list, with the same pointer-identity rationale as ArrayNode.
type ObjectNode struct {
	Key   []byte
	Value *Value
	Next  *ObjectNode
}

// Value is a tagged union over the JSON data model plus the two
// evaluator-layer variants (Symbol, Closure). Scalars hold a
// zero-copy slice into the buffer that produced them; containers hold
// head/tail pointers into a singly-linked node list so that append is
// O(1).
//
// Owned reports whether Scalar is a heap allocation this Value is
// responsible for (set by builtins that synthesize new strings or
// numbers, e.g. arithmetic results and string-append). Parse-produced
// scalars are never Owned: their Scalar slice aliases the input
// buffer.
type Value struct {
	Tag     Tag
	Scalar  []byte // valid for Null, Boolean, Number, String, Symbol
	Owned   bool
	Head    *ArrayNode  // valid for Array
	Tail    *ArrayNode  // valid for Array; Tail == Head when length == 1
	OHead   *ObjectNode // valid for Object
	OTail   *ObjectNode // valid for Object; OTail == OHead when length == 1
	Closure *Closure    // valid for Closure
}

// Closure is a callable value: parameters, a body expression, and the
// environment captured at the point lambda was evaluated (lexical
// scoping; see DESIGN.md open question #1).
type Closure struct {
	Params []*Value
	Body   *Value
	Env    *Env
}

// Null returns a Null value.
func Null() *Value { return &Value{Tag: TagNull, Scalar: []byte("null")} }

// Bool returns a Boolean value for b.
func Bool(b bool) *Value {
	if b {
		return &Value{Tag: TagBoolean, Scalar: []byte("true")}
	}
	return &Value{Tag: TagBoolean, Scalar: []byte("false")}
}

// IsTruthy implements exJSON truthiness: null and boolean-false are
// false, everything else (including 0, "", and empty containers) is
// true.
func (v *Value) IsTruthy() bool {
	if v == nil || v.Tag == TagNull {
		return false
	}
	if v.Tag == TagBoolean {
		return len(v.Scalar) == 4 // "true"
	}
	return true
}

// IsEmptyList reports whether v is an array with no elements.
func (v *Value) IsEmptyList() bool {
	return v != nil && v.Tag == TagArray && v.Head == nil
}

// Len returns the number of elements in an array or the byte length
// of a string. Callers (builtins.go) check the tag first; any other
// tag reports 0.
func (v *Value) Len() int {
	switch v.Tag {
	case TagArray:
		n := 0
		for node := v.Head; node != nil; node = node.Next {
			n++
		}
		return n
	case TagString:
		return len(v.Scalar)
	default:
		return 0
	}
}

// AppendArray appends item to the end of an array value in O(1).
func (v *Value) AppendArray(item *Value) {
	node := AllocArrayNode()
	node.Item = item
	if v.Head == nil {
		v.Head = node
		v.Tail = node
		return
	}
	v.Tail.Next = node
	v.Tail = node
}

// SetObject inserts or replaces key in an object value, preserving
// insertion order for new keys. Matches
// original_source/src/json.c's json_object_set_take_key semantics.
func (v *Value) SetObject(key []byte, value *Value) {
	for node := v.OHead; node != nil; node = node.Next {
		if bytes.Equal(node.Key, key) {
			node.Value = value
			return
		}
	}
	node := AllocObjectNode()
	node.Key, node.Value = key, value
	if v.OHead == nil {
		v.OHead = node
		v.OTail = node
		return
	}
	v.OTail.Next = node
	v.OTail = node
}

// GetObject looks up key in an object value by byte equality.
func (v *Value) GetObject(key []byte) (*Value, bool) {
	for node := v.OHead; node != nil; node = node.Next {
		if bytes.Equal(node.Key, key) {
			return node.Value, true
		}
	}
	return nil, false
}

// Equal reports structural equality: tags must match, scalars compare
// by byte content, arrays compare element-by-element in order,
// objects compare order-insensitively (every key in a must exist in b
// with an equal value, and vice versa).
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNull:
		return true
	case TagBoolean, TagNumber, TagString, TagSymbol:
		return bytes.Equal(a.Scalar, b.Scalar)
	case TagArray:
		na, nb := a.Head, b.Head
		for na != nil && nb != nil {
			if !Equal(na.Item, nb.Item) {
				return false
			}
			na, nb = na.Next, nb.Next
		}
		return na == nil && nb == nil
	case TagObject:
		if objectLen(a) != objectLen(b) {
			return false
		}
		for node := a.OHead; node != nil; node = node.Next {
			bv, ok := b.GetObject(node.Key)
			if !ok || !Equal(node.Value, bv) {
				return false
			}
		}
		return true
	case TagClosure:
		return a.Closure == b.Closure
	default:
		return false
	}
}

func objectLen(v *Value) int {
	n := 0
	for node := v.OHead; node != nil; node = node.Next {
		n++
	}
	return n
}

// Copy performs a deep structural copy of v. Scalars are copied by
// slice reference (safe: the design only requires the payload to be
// immutable, not independently owned, per §3's lifecycle rules) unless
// v.Owned is set, in which case the bytes are duplicated so the copy
// has independent ownership. Grounded on
// original_source/src/exjson.c's exjson_copy_value.
func Copy(v *Value) *Value {
	if v == nil {
		return nil
	}
	switch v.Tag {
	case TagNull, TagBoolean, TagNumber, TagString, TagSymbol:
		if v.Owned {
			dup := make([]byte, len(v.Scalar))
			copy(dup, v.Scalar)
			return &Value{Tag: v.Tag, Scalar: dup, Owned: true}
		}
		return &Value{Tag: v.Tag, Scalar: v.Scalar}
	case TagArray:
		out := &Value{Tag: TagArray}
		for node := v.Head; node != nil; node = node.Next {
			out.AppendArray(Copy(node.Item))
		}
		return out
	case TagObject:
		out := &Value{Tag: TagObject}
		for node := v.OHead; node != nil; node = node.Next {
			out.SetObject(node.Key, Copy(node.Value))
		}
		return out
	case TagClosure:
		return &Value{Tag: TagClosure, Closure: v.Closure}
	default:
		return &Value{Tag: v.Tag}
	}
}
