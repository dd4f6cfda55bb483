// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream_test

import (
	"testing"

	stream "code.hybscloud.com/streamcore"
)

func TestMidFuseDoublerThenDoublerQuadruples(t *testing.T) {
	quad := stream.MidFuse[int, int, int](Doubler(), Doubler())
	fused := stream.LeftFuse[int, int](RangeProducer(1, 4), quad)
	got := stream.Run(stream.Connect[int, int](fused, SumConsumer()))
	want := 4 + 8 + 12
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestMidFuseFirstFinishesDrainsThroughSecond(t *testing.T) {
	take1 := TakeN[int](1)
	composed := stream.MidFuse[int, int, int](take1, Doubler())
	fused := stream.LeftFuse[int, int](RangeProducer(5, 9), composed)
	got := stream.Run(stream.Connect[int, int](fused, SumConsumer()))
	// Only the first upstream value (5) survives TakeN, doubled by the
	// second transformer.
	want := 10
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestMidFuseAssociativity(t *testing.T) {
	left := stream.MidFuse[int, int, int](
		stream.MidFuse[int, int, int](Doubler(), Doubler()),
		Doubler(),
	)
	right := stream.MidFuse[int, int, int](
		Doubler(),
		stream.MidFuse[int, int, int](Doubler(), Doubler()),
	)

	gotLeft := stream.Run(stream.Connect[int, int](
		stream.LeftFuse[int, int](RangeProducer(1, 3), left), SumConsumer()))
	gotRight := stream.Run(stream.Connect[int, int](
		stream.LeftFuse[int, int](RangeProducer(1, 3), right), SumConsumer()))

	if gotLeft != gotRight {
		t.Fatalf("MidFuse associativity failed: %d != %d", gotLeft, gotRight)
	}
	want := 1*8 + 2*8
	if gotLeft != want {
		t.Fatalf("got %d, want %d", gotLeft, want)
	}
}
