// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream_test

import (
	"testing"

	stream "code.hybscloud.com/streamcore"
)

func TestConnectSum(t *testing.T) {
	got := stream.Run(stream.Connect[int, int](RangeProducer(1, 6), SumConsumer()))
	want := 1 + 2 + 3 + 4 + 5
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestConnectBufferedLeftoverIsReplayed(t *testing.T) {
	buf := stream.NewBufferedProducer(RangeProducer(0, 3))

	stopAtOne := stream.NewActiveConsumer(
		func(a int) stream.Eff[stream.PushResult[int, int]] {
			if a == 1 {
				leftover := a
				return stream.Pure[stream.PushResult[int, int]](stream.Done[int, int]{Leftover: &leftover, Value: a})
			}
			return stream.Pure[stream.PushResult[int, int]](stream.RunningPush[int, int]{Next: stopAtOneConsumer()})
		},
		func() stream.Eff[int] { return stream.Pure(-1) },
	)

	got := stream.Run(stream.ConnectBuffered[int, int](buf, stopAtOne))
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}

	// Draining the rest via Connect on the unbuffered tail must start
	// with the replayed leftover (1), then continue with 2.
	tail := stream.Unbuffer(buf)
	sumC := SumConsumer()
	sum := stream.Run(stream.Connect[int, int](tail, sumC))
	if sum != 1+2 {
		t.Fatalf("got %d, want %d (leftover 1 replayed, then 2)", sum, 1+2)
	}
}

func stopAtOneConsumer() stream.Consumer[int, int] {
	return stream.NewActiveConsumer(
		func(a int) stream.Eff[stream.PushResult[int, int]] {
			if a == 1 {
				leftover := a
				return stream.Pure[stream.PushResult[int, int]](stream.Done[int, int]{Leftover: &leftover, Value: a})
			}
			return stream.Pure[stream.PushResult[int, int]](stream.RunningPush[int, int]{Next: stopAtOneConsumer()})
		},
		func() stream.Eff[int] { return stream.Pure(-1) },
	)
}
