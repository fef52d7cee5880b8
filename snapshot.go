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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// snapshotMagic tags the compressed blob format so LoadSnapshot can
// reject foreign input instead of silently misparsing it.
const snapshotMagic uint32 = 0x65784a53 // "SJxe" little-endian

// SnapshotLevel chooses the codec SaveSnapshot uses: fast s2 framing
// for throughput-sensitive call sites, or zstd for smaller blobs at
// higher CPU cost. This replaces the teacher's tape-format
// serialize/deserialize pair (parsed_serialize.go), which depended on
// a flat tape index the linked-list Value tree does not have; instead
// of a structural tape dump, a snapshot is the document's compact JSON
// text (print.go's writeCompact rendering — Stringify's pretty output
// would only waste bytes ahead of compression) under one of these
// codecs, then re-parsed on load.
type SnapshotLevel uint8

const (
	// SnapshotFast uses s2, favoring encode/decode speed.
	SnapshotFast SnapshotLevel = iota
	// SnapshotSmall uses zstd, favoring compressed size.
	SnapshotSmall
)

// SaveSnapshot writes a compressed, self-describing encoding of v to
// w: a JSON document reduced to its compact text form and compressed
// with the codec named by level.
func SaveSnapshot(w io.Writer, v *Value, level SnapshotLevel) error {
	var cbuf bytes.Buffer
	writeCompact(&cbuf, v)
	text := cbuf.Bytes()

	var header [9]byte
	binary.LittleEndian.PutUint32(header[0:4], snapshotMagic)
	header[4] = byte(level)
	binary.LittleEndian.PutUint32(header[5:9], uint32(len(text)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	switch level {
	case SnapshotFast:
		enc := s2.NewWriter(w)
		if _, err := enc.Write(text); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	case SnapshotSmall:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := enc.Write(text); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("exjson: unknown snapshot level %d", level)
	}
}

// LoadSnapshot reads back a blob written by SaveSnapshot and parses it
// with Parse using arena, returning the reconstructed tree. arena may
// be nil to let Parse allocate its own.
func LoadSnapshot(r io.Reader, arena *Arena) (*Value, error) {
	var header [9]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("exjson: reading snapshot header: %w", err)
	}
	if binary.LittleEndian.Uint32(header[0:4]) != snapshotMagic {
		return nil, fmt.Errorf("exjson: not an exjson snapshot")
	}
	level := SnapshotLevel(header[4])
	size := binary.LittleEndian.Uint32(header[5:9])

	var text []byte
	switch level {
	case SnapshotFast:
		dec := s2.NewReader(r)
		text = make([]byte, size)
		if _, err := io.ReadFull(dec, text); err != nil {
			return nil, fmt.Errorf("exjson: decompressing snapshot: %w", err)
		}
	case SnapshotSmall:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		text = make([]byte, size)
		if _, err := io.ReadFull(dec, text); err != nil {
			return nil, fmt.Errorf("exjson: decompressing snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("exjson: unknown snapshot level %d", level)
	}

	var opts []ParserOption
	if arena != nil {
		opts = append(opts, WithArena(arena))
	}
	return Parse(text, opts...)
}
