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

import "fmt"

// ErrorCode enumerates parse/validation failure kinds, mirroring
// original_source/src/json.h's json_error enum. The bit 0x10, just
// above every base code, marks a null-pointer variant of a base code, same as the C source's
// E_NULL flag; NullVariant exposes that without requiring callers to
// do their own bit arithmetic.
type ErrorCode uint8

const (
	ENoError ErrorCode = iota
	ENoData
	EInvalidJSON
	EInvalidJSONData
	EStackOverflowObject
	EStackOverflowArray
	EObjectKey
	EObjectValue
	EExpectedObject
	EExpectedArray
	EExpectedString
	EExpectedBoolean
	EExpectedNull
	EInvalidData
	EMalformedJSON
	EUnknownError
)

// ENull is the null-pointer-encountered flag, matching E_NULL in the
// C source. It is combined with a base code via NullVariant, not used
// standalone.
const ENull ErrorCode = 0x10

// NullVariant returns the null-pointer variant of a base error code,
// e.g. EObjectKey.NullVariant() == the C source's E_EXPECTED_OBJECT_KEY.
func (e ErrorCode) NullVariant() ErrorCode { return e | ENull }

func (e ErrorCode) String() string {
	switch e {
	case ENoError:
		return "no error"
	case ENoData:
		return "no data"
	case EInvalidJSON:
		return "invalid JSON"
	case EInvalidJSONData:
		return "invalid JSON data"
	case EStackOverflowObject:
		return "stack overflow while parsing object"
	case EStackOverflowArray:
		return "stack overflow while parsing array"
	case EObjectKey:
		return "invalid object key"
	case EObjectValue:
		return "invalid object value"
	case EExpectedObject:
		return "expected object"
	case EExpectedArray:
		return "expected array"
	case EExpectedString:
		return "expected string"
	case EExpectedBoolean:
		return "expected boolean"
	case EExpectedNull:
		return "expected null"
	case EInvalidData:
		return "invalid data"
	case EMalformedJSON:
		return "malformed JSON"
	default:
		return "unknown error"
	}
}

// ParseError is returned by Parse, ParseIterative, and ParseExpr
// (Validate reports a bare ErrorCode instead). Offset is the byte
// position within the input buffer where the failure was detected.
type ParseError struct {
	Code   ErrorCode
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("exjson: %s at offset %d", e.Code, e.Offset)
}

// NewParseError builds a ParseError, used throughout parse.go,
// parse_iterative.go, and sexpr.go.
func NewParseError(code ErrorCode, offset int) *ParseError {
	return &ParseError{Code: code, Offset: offset}
}

// EvalError is the evaluator's failure representation. Per §7 of the
// spec the evaluator never panics or returns a Go error from Eval —
// failures fold into an ordinary {"error": "<message>"} object value
// so the evaluator stays total and composable. EvalError exists only
// as a convenience for Go callers of builtins.go that want an
// error-typed wrapper around that same message.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return e.Message }

// ErrorFromValue converts an evaluator error object (as returned by
// Eval on failure) into a Go error, for callers that want to fold an
// exJSON evaluation into ordinary Go error handling instead of
// inspecting the {"error": ...} value directly. It returns nil if v is
// not an error value.
func ErrorFromValue(v *Value) error {
	if !isError(v) {
		return nil
	}
	msg, _ := v.GetObject([]byte("error"))
	return &EvalError{Message: string(msg.Scalar)}
}

// errorValue builds the {"error": "<message>"} object the evaluator
// returns in place of throwing, matching
// original_source/src/exjson.c's create_error.
func errorValue(format string, args ...any) *Value {
	msg := fmt.Sprintf(format, args...)
	v := &Value{Tag: TagObject}
	v.SetObject([]byte("error"), &Value{Tag: TagString, Scalar: []byte(msg), Owned: true})
	return v
}

// isError reports whether v is an evaluator error object, i.e. it has
// an "error" key. Used by eval.go and builtins.go to short-circuit
// propagation without needing exceptions.
func isError(v *Value) bool {
	if v == nil || v.Tag != TagObject {
		return false
	}
	_, ok := v.GetObject([]byte("error"))
	return ok
}
