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
	"bytes"
	"testing"
)

func TestStringifyRoundTrips(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[2,3],"c":"hi","d":null,"e":true}`,
		`[]`,
		`{}`,
		`[1,2,3]`,
	}
	for _, in := range inputs {
		v, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		out := Stringify(v)
		reparsed, err := Parse(out)
		if err != nil {
			t.Fatalf("Parse(Stringify(%q)) = %q: %v", in, out, err)
		}
		if !Equal(v, reparsed) {
			t.Errorf("round trip changed value: %q -> %q", in, out)
		}
	}
}

func TestStringifyIsPretty(t *testing.T) {
	v, _ := Parse([]byte(`{"a": 1,  "b" :  2 }`))
	out := Stringify(v)
	if !bytes.Contains(out, []byte("\n    \"a\"")) {
		t.Errorf("Stringify should indent object keys like PrettyPrint, got %q", out)
	}
	if string(out) != string(PrettyPrint(v)) {
		t.Errorf("Stringify and PrettyPrint should agree, got %q vs %q", out, PrettyPrint(v))
	}
}

func TestPrettyPrintIndents(t *testing.T) {
	v, _ := Parse([]byte(`{"a":[1,2]}`))
	out := PrettyPrint(v)
	if !bytes.Contains(out, []byte("\n    \"a\"")) {
		t.Errorf("expected 4-space indented key, got %s", out)
	}
}

func TestPrettyPrintArraysAreSingleLine(t *testing.T) {
	v, _ := Parse([]byte(`{"a":[1,2,3]}`))
	out := PrettyPrint(v)
	if bytes.Contains(out, []byte("[\n")) {
		t.Errorf("arrays should render single-line even in pretty mode, got %q", out)
	}
	if !bytes.Contains(out, []byte(`"a": [1,2,3]`)) {
		t.Errorf("expected compact single-line array, got %q", out)
	}
}

func TestStringifyToBufferReportsBytesWritten(t *testing.T) {
	v, _ := Parse([]byte(`[1,2,3]`))
	buf := make([]byte, 64)
	n := StringifyToBuffer(buf, v)
	if n < 0 {
		t.Fatal("expected a successful write into a generously sized buffer")
	}
	if string(buf[:n]) != string(Stringify(v)) {
		t.Errorf("StringifyToBuffer/Stringify mismatch: %q vs %q", buf[:n], Stringify(v))
	}
}

func TestStringifyToBufferOverflowsWithSmallBuffer(t *testing.T) {
	v, _ := Parse([]byte(`{"a":1,"b":2,"c":3}`))
	buf := make([]byte, 4)
	if n := StringifyToBuffer(buf, v); n != -1 {
		t.Fatalf("want -1 on overflow, got %d", n)
	}
}

func TestFprintPrettyMatchesPrettyPrint(t *testing.T) {
	v, _ := Parse([]byte(`{"a":[1,2]}`))
	var buf bytes.Buffer
	if err := FprintPretty(&buf, v); err != nil {
		t.Fatalf("FprintPretty: %v", err)
	}
	if buf.String() != string(PrettyPrint(v)) {
		t.Errorf("FprintPretty/PrettyPrint mismatch: %q vs %q", buf.String(), PrettyPrint(v))
	}
}

func TestFprintMatchesStringify(t *testing.T) {
	v, _ := Parse([]byte(`[1,2,3]`))
	var buf bytes.Buffer
	if err := Fprint(&buf, v); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if buf.String() != string(Stringify(v)) {
		t.Errorf("Fprint/Stringify mismatch: %q vs %q", buf.String(), Stringify(v))
	}
}
