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

// isSymbolChar matches original_source/src/exjson.c's is_symbol_char:
// alphanumerics plus the characters exJSON's built-in operator names
// need (+ - * / < > = ? !) and the conventional Lisp name separator _.
func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '-', '?', '!', '+', '*', '/', '<', '>', '=':
		return true
	}
	return false
}

func (s *scanner) scanSymbol() ([]byte, bool) {
	start := s.pos
	for isSymbolChar(s.peek()) {
		s.pos++
	}
	if s.pos == start {
		return nil, false
	}
	return s.buf[start:s.pos], true
}

// ParseExpr parses a single exJSON form, matching exjson_parse's
// dispatch on the first non-whitespace byte: a parenthesized
// S-expression if it starts with '(', otherwise the full JSON grammar
// via parseValue — exactly exjson_parse's
// "if (*json == '(') { ... } else { return json_parse(json, root); }".
// This is wider than parseExprValue's own element ladder: {, [, and
// bare true/false/null are valid top-level forms here even though they
// are shadowed by the symbol branch inside a list. As with Parse,
// trailing non-whitespace after the form is a hard error (§ open
// question #2's unified-trailing-content resolution; the original C
// source allowed it for exjson_parse while Parse's own trailing check
// forbade it for plain JSON — this package requires exactly one
// top-level form in both cases).
func ParseExpr(input []byte, opts ...ParserOption) (*Value, error) {
	if len(input) == 0 {
		return nil, NewParseError(ENoData, 0)
	}
	cfg := buildConfig(opts)
	s := newScanner(input)
	s.skipWS()
	if s.eof() {
		return nil, NewParseError(ENoData, s.pos)
	}
	var v *Value
	var err error
	if s.peek() == '(' {
		v, err = parseList(s, cfg.arena)
	} else {
		v, err = parseValue(s, cfg.arena)
	}
	if err != nil {
		return nil, err
	}
	s.skipWS()
	if !s.eof() {
		return nil, NewParseError(EMalformedJSON, s.pos)
	}
	return v, nil
}

// parseExprValue dispatches on the next byte: nested list, then
// number, then generic symbol, then string. Digits and '-' are symbol
// characters, so a number is recognized first: a digit, or a '-'
// directly followed by a digit (a lone '-' is the subtraction symbol).
// Every letter is a symbol character, so bare "true"/"false"/"null"
// occurring as a list element are consumed by the symbol branch, not
// as JSON literals — the original C source also checks symbols before
// its own strncmp("true",...) branches, leaving them unreachable — and
// exJSON's global environment starts with no bindings for those names,
// so using one bare evaluates to an "undefined variable" error rather
// than a boolean/null value. Quoting one, e.g. (quote true), yields
// the symbol true, not a boolean: quote does not evaluate its
// argument, and the parser has already made it a symbol.
func parseExprValue(s *scanner, a *Arena) (*Value, error) {
	s.skipWS()
	if s.eof() {
		return nil, NewParseError(EInvalidJSON, s.pos)
	}
	switch {
	case s.peek() == '(':
		return parseList(s, a)
	case isDigit(s.peek()) || (s.peek() == '-' && isDigit(s.peekAt(1))):
		return parseNumber(s, a)
	case isSymbolChar(s.peek()):
		return parseSymbolValue(s, a)
	case s.peek() == '"':
		return parseString(s, a)
	default:
		return nil, NewParseError(EInvalidJSON, s.pos)
	}
}

func parseSymbolValue(s *scanner, a *Arena) (*Value, error) {
	start := s.pos
	sym, ok := s.scanSymbol()
	if !ok {
		return nil, NewParseError(EInvalidJSON, start)
	}
	v := a.Alloc()
	if v == nil {
		return nil, NewParseError(EStackOverflowObject, s.pos)
	}
	v.Tag = TagSymbol
	v.Scalar = sym
	return v, nil
}

// parseList parses a parenthesized form as an Array of its elements,
// matching exjson_parse_lisp_expr: "(", then zero or more forms
// separated only by whitespace (no commas, unlike JSON arrays), then
// ")".
func parseList(s *scanner, a *Arena) (*Value, error) {
	s.pos++ // '('
	v := a.Alloc()
	if v == nil {
		return nil, NewParseError(EStackOverflowArray, s.pos)
	}
	v.Tag = TagArray
	s.skipWS()
	for s.peek() != ')' {
		if s.eof() {
			return nil, NewParseError(EInvalidJSON, s.pos)
		}
		item, err := parseExprValue(s, a)
		if err != nil {
			return nil, err
		}
		v.AppendArray(item)
		s.skipWS()
	}
	s.pos++ // ')'
	return v, nil
}
