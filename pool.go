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

// DefaultArenaSize matches original_source/src/json.h's
// JSON_VALUE_POOL_SIZE (0xFFFF): the default number of Value cells an
// Arena preallocates.
const DefaultArenaSize = 0xFFFF

// DefaultStackDepth matches JSON_STACK_SIZE: the iterative parser's
// maximum frame-stack depth.
const DefaultStackDepth = 0xFFFF

// Arena is a fixed-capacity, caller-owned pool of Value cells with a
// free list, the Go rewrite of the C source's global json_value_pool
// (see original_source/src/json.c). Per DESIGN.md's "arena ownership
// model" decision, an Arena is never package-level global state: every
// parse call uses its own Arena (one passed with WithArena, or a fresh
// one created for that call), so independent arenas can be used
// safely from independent goroutines (sharing one Arena across
// goroutines is still unsynchronized and out of scope, matching
// spec.md §5).
type Arena struct {
	cells    []Value
	free     []*Value
	occupied int
}

// NewArena allocates an Arena with room for size Value cells. A zero
// or negative size uses DefaultArenaSize.
func NewArena(size int) *Arena {
	if size <= 0 {
		size = DefaultArenaSize
	}
	a := &Arena{
		cells: make([]Value, size),
		free:  make([]*Value, size),
	}
	a.resetFreeList()
	return a
}

func (a *Arena) resetFreeList() {
	a.free = a.free[:0]
	for i := range a.cells {
		a.free = append(a.free, &a.cells[i])
	}
	a.occupied = 0
}

// Alloc pops a cell off the free list. It returns nil on exhaustion;
// callers propagate that as EStackOverflowObject/EStackOverflowArray
// per §4.1, matching new_json_value's NULL-on-exhaustion contract.
func (a *Arena) Alloc() *Value {
	n := len(a.free)
	if n == 0 {
		return nil
	}
	v := a.free[n-1]
	a.free = a.free[:n-1]
	*v = Value{}
	a.occupied++
	return v
}

// AllocArrayNode and AllocObjectNode are plain heap allocations: only
// the fixed-size Value cells are pool-backed, matching the C source
// (array/object *nodes* are calloc'd individually even though values
// come from the pool). Go's GC makes pooling these nodes unnecessary
// for correctness. Reset below stays O(1), like json_reset, because it
// never walks or frees the nodes: a node becomes garbage once the
// cells that point at it are reused by Alloc (which zeroes them) or
// zeroed by Cleanup.
func AllocArrayNode() *ArrayNode   { return &ArrayNode{} }
func AllocObjectNode() *ObjectNode { return &ObjectNode{} }

// Len reports how many cells are currently allocated out of the arena.
func (a *Arena) Len() int { return a.occupied }

// Cap reports the arena's total cell capacity.
func (a *Arena) Cap() int { return len(a.cells) }

// Reset reclaims every allocated cell in O(1) by repopulating the
// free list, matching json_reset. It does not zero the cells; stale
// data is simply unreachable until reused by Alloc (which does zero
// on allocation).
func (a *Arena) Reset() {
	a.resetFreeList()
}

// Cleanup zeros the underlying cell storage and then resets, matching
// json_cleanup. Use when parsed data must not remain inspectable in
// memory after release.
func (a *Arena) Cleanup() {
	for i := range a.cells {
		a.cells[i] = Value{}
	}
	a.resetFreeList()
}

// EnvArena is the Arena analog for environment frames
// (original_source/src/exjson.c's env_frame_pool / ENV_POOL_SIZE).
type EnvArena struct {
	frames   []Env
	free     []*Env
	occupied int
}

// DefaultEnvArenaSize matches exjson.c's ENV_POOL_SIZE.
const DefaultEnvArenaSize = 1024

// NewEnvArena allocates an EnvArena with room for size frames. A zero
// or negative size uses DefaultEnvArenaSize.
func NewEnvArena(size int) *EnvArena {
	if size <= 0 {
		size = DefaultEnvArenaSize
	}
	a := &EnvArena{
		frames: make([]Env, size),
		free:   make([]*Env, size),
	}
	a.resetFreeList()
	return a
}

func (a *EnvArena) resetFreeList() {
	a.free = a.free[:0]
	for i := range a.frames {
		a.free = append(a.free, &a.frames[i])
	}
	a.occupied = 0
}

// Alloc pops a frame off the free list, or returns nil on exhaustion.
func (a *EnvArena) Alloc() *Env {
	n := len(a.free)
	if n == 0 {
		return nil
	}
	f := a.free[n-1]
	a.free = a.free[:n-1]
	*f = Env{}
	a.occupied++
	return f
}

// Free returns a frame to the free list, matching exjson_env_free's
// pool-return branch. Callers must not use env after calling Free.
func (a *EnvArena) Free(env *Env) {
	if env == nil {
		return
	}
	*env = Env{}
	a.free = append(a.free, env)
	if a.occupied > 0 {
		a.occupied--
	}
}

// Reset reclaims every allocated frame in O(1).
func (a *EnvArena) Reset() { a.resetFreeList() }
