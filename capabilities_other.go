//go:build !amd64 || appengine || noasm || !gc

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

// FastPath always reports false off amd64: there is no AVX2 feature
// to probe for via cpuid on these builds.
func FastPath() bool { return false }

func iterativeChunkHint() int { return 1024 }
