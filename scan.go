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

// scanner wraps an input buffer and a cursor. It is shared by the
// recursive parser, the iterative parser, and the validator, matching
// original_source/src/json.c's use of a single `const char **s`
// cursor convention threaded through every parse helper.
type scanner struct {
	buf []byte
	pos int
}

func newScanner(buf []byte) *scanner { return &scanner{buf: buf} }

func (s *scanner) eof() bool { return s.pos >= len(s.buf) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.buf[s.pos]
}

func (s *scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.buf) {
		return 0
	}
	return s.buf[s.pos+off]
}

// skipWS skips space/tab/CR/LF, per §4.2.
func (s *scanner) skipWS() {
	for !s.eof() {
		switch s.buf[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// matchLiteral consumes lit (e.g. "true", "null") if buf has it as a
// byte-prefix at the cursor, matching match_literal_build.
func (s *scanner) matchLiteral(lit string) bool {
	if s.pos+len(lit) > len(s.buf) {
		return false
	}
	if string(s.buf[s.pos:s.pos+len(lit)]) != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

const (
	stateInitial = iota
	stateEscapeStart
	stateEscapeUnicode1
	stateEscapeUnicode2
	stateEscapeUnicode3
	stateEscapeUnicode4
)

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// scanString implements the explicit five-state string scanner of
// §4.2. The cursor must be positioned just past the opening quote.
// On success it returns the raw (unescaped) body as a zero-copy slice
// of buf and leaves the cursor just past the closing quote. Escape
// sequences are validated syntactically but not decoded, per the
// explicit non-goal on \uXXXX byte decoding.
func (s *scanner) scanString() ([]byte, bool) {
	start := s.pos
	state := stateInitial
	for {
		if s.eof() {
			return nil, false
		}
		c := s.buf[s.pos]
		switch state {
		case stateInitial:
			switch c {
			case '"':
				body := s.buf[start:s.pos]
				s.pos++
				return body, true
			case '\\':
				state = stateEscapeStart
			default:
				if c < 0x20 {
					return nil, false
				}
			}
		case stateEscapeStart:
			switch c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				state = stateInitial
			case 'u':
				state = stateEscapeUnicode1
			default:
				return nil, false
			}
		case stateEscapeUnicode1:
			if !isHexDigit(c) {
				return nil, false
			}
			state = stateEscapeUnicode2
		case stateEscapeUnicode2:
			if !isHexDigit(c) {
				return nil, false
			}
			state = stateEscapeUnicode3
		case stateEscapeUnicode3:
			if !isHexDigit(c) {
				return nil, false
			}
			state = stateEscapeUnicode4
		case stateEscapeUnicode4:
			if !isHexDigit(c) {
				return nil, false
			}
			state = stateInitial
		}
		s.pos++
	}
}

// skipString is scanString without materializing the body slice, for
// the validator (§4.5), which must not allocate or build a tree.
func (s *scanner) skipString() bool {
	_, ok := s.scanString()
	return ok
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanNumber lexes a JSON number per RFC 8259 grammar
// (-?int(.frac)?([eE][+-]?digits)?) and returns the raw lexeme
// [start, end) without decoding it, per the explicit non-goal on full
// numeric decoding; the lexeme is converted to a float64 only on
// demand (builtins.go's numberOf).
func (s *scanner) scanNumber() ([]byte, bool) {
	start := s.pos
	if s.peek() == '-' {
		s.pos++
	}
	if !isDigit(s.peek()) {
		return nil, false
	}
	if s.peek() == '0' {
		s.pos++
	} else {
		for isDigit(s.peek()) {
			s.pos++
		}
	}
	if s.peek() == '.' {
		s.pos++
		if !isDigit(s.peek()) {
			return nil, false
		}
		for isDigit(s.peek()) {
			s.pos++
		}
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		s.pos++
		if s.peek() == '+' || s.peek() == '-' {
			s.pos++
		}
		if !isDigit(s.peek()) {
			return nil, false
		}
		for isDigit(s.peek()) {
			s.pos++
		}
	}
	return s.buf[start:s.pos], true
}
