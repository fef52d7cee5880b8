//go:build amd64 && !appengine && !noasm && gc

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

import "github.com/klauspost/cpuid/v2"

// FastPath reports whether the host CPU supports the instruction set
// this build treats as "fast" for scanning. Unlike the teacher's
// SupportedCPU (which gated whether AVX2 tape-building assembly could
// run at all), there is no SIMD kernel here to gate: the value tree is
// a linked list, not a flat tape, so the scanner is always the plain
// byte-loop in scan.go. FastPath instead tunes a scheduling knob —
// iterativeChunkHint — so the iterative parser's frame stack starts
// with a larger capacity on hosts with a wide load pipeline, avoiding
// repeated small reallocations during deep-array parses.
func FastPath() bool {
	return cpuid.CPU.Supports(cpuid.AVX2)
}

// iterativeChunkHint returns the initial capacity of the iterative
// parser's frame stack; past it the stack grows by append, up to the
// parser's depth limit.
func iterativeChunkHint() int {
	if FastPath() {
		return 4096
	}
	return 1024
}
