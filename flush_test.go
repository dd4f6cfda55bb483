// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream_test

import (
	"strconv"
	"testing"

	stream "code.hybscloud.com/streamcore"
)

func TestMapFlushChunk(t *testing.T) {
	fl := stream.Flush[int](stream.Chunk[int]{Value: 41})
	mapped := stream.MapFlush(func(x int) string { return strconv.Itoa(x + 1) }, fl)
	c, ok := mapped.(stream.Chunk[string])
	if !ok {
		t.Fatalf("got %#v, want Chunk[string]", mapped)
	}
	if c.Value != "42" {
		t.Fatalf("got %q, want %q", c.Value, "42")
	}
}

func TestMapFlushSignalPassesThrough(t *testing.T) {
	fl := stream.Flush[int](stream.FlushSignal[int]{})
	mapped := stream.MapFlush(func(x int) string { return strconv.Itoa(x) }, fl)
	if _, ok := mapped.(stream.FlushSignal[string]); !ok {
		t.Fatalf("got %#v, want FlushSignal[string]", mapped)
	}
}
