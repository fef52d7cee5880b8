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

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		tag  Tag
	}{
		{"null", "null", TagNull},
		{"true", "true", TagBoolean},
		{"false", "false", TagBoolean},
		{"number", "42.5", TagNumber},
		{"negative", "-3", TagNumber},
		{"exponent", "1e10", TagNumber},
		{"string", `"hello"`, TagString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if v.Tag != tt.tag {
				t.Fatalf("Parse(%q) tag = %v, want %v", tt.in, v.Tag, tt.tag)
			}
		})
	}
}

func TestParseArrayAndObject(t *testing.T) {
	v, err := Parse([]byte(`{"a":[1,2,3],"b":{"c":true}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, ok := v.GetObject([]byte("a"))
	if !ok || a.Tag != TagArray || a.Len() != 3 {
		t.Fatalf("unexpected a: %+v", a)
	}
	b, ok := v.GetObject([]byte("b"))
	if !ok || b.Tag != TagObject {
		t.Fatalf("unexpected b: %+v", b)
	}
	c, ok := b.GetObject([]byte("c"))
	if !ok || c.Tag != TagBoolean {
		t.Fatalf("unexpected c: %+v", c)
	}
}

func TestParseEmptyInputIsError(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParseTrailingContentIsError(t *testing.T) {
	if _, err := Parse([]byte(`1 2`)); err == nil {
		t.Fatal("expected error for trailing content")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	inputs := []string{
		`{"a":}`,
		`[1,2`,
		`{"a" 1}`,
		`tru`,
		`"unterminated`,
	}
	for _, in := range inputs {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) should have failed", in)
		}
	}
}

func TestArenaExhaustionDuringParse(t *testing.T) {
	a := NewArena(1)
	_, err := Parse([]byte(`[1,2]`), WithArena(a))
	if err == nil {
		t.Fatal("expected stack-overflow style error from a 1-cell arena")
	}
}
