// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream_test

import stream "code.hybscloud.com/streamcore"

// RangeProducer yields lo, lo+1, ..., hi-1 then closes. Closing it before
// exhaustion is a no-op beyond the contract: it carries no resources.
func RangeProducer(lo, hi int) stream.Producer[int] {
	return rangeFrom(lo, hi)
}

func rangeFrom(cur, hi int) stream.Producer[int] {
	return stream.NewProducer(
		func() stream.Eff[stream.PullResult[int]] {
			if cur >= hi {
				return stream.Pure[stream.PullResult[int]](stream.Closed[int]{})
			}
			return stream.Pure[stream.PullResult[int]](stream.Open[int]{Next: rangeFrom(cur+1, hi), Value: cur})
		},
		func() stream.Eff[struct{}] { return stream.Pure(struct{}{}) },
	)
}

// SumConsumer accumulates every pushed int and reports the running total
// on close. It never finishes early.
func SumConsumer() stream.Consumer[int, int] {
	return sumFrom(0)
}

func sumFrom(acc int) stream.Consumer[int, int] {
	return stream.NewActiveConsumer(
		func(a int) stream.Eff[stream.PushResult[int, int]] {
			return stream.Pure[stream.PushResult[int, int]](stream.RunningPush[int, int]{Next: sumFrom(acc + a)})
		},
		func() stream.Eff[int] { return stream.Pure(acc) },
	)
}

func emptyProducer[A any]() stream.Producer[A] {
	return stream.NewProducer(
		func() stream.Eff[stream.PullResult[A]] { return stream.Pure[stream.PullResult[A]](stream.Closed[A]{}) },
		func() stream.Eff[struct{}] { return stream.Pure(struct{}{}) },
	)
}

// Doubler emits one output per input, doubled, and has an empty drain.
func Doubler() stream.Transformer[int, int] {
	return stream.NewTransformer(
		func(a int) stream.Eff[stream.TResult[int, int]] {
			return stream.Pure[stream.TResult[int, int]](stream.THaveMore[int, int]{
				Value: a * 2,
				PullMore: func() stream.Eff[stream.TResult[int, int]] {
					return stream.Pure[stream.TResult[int, int]](stream.TRunning[int, int]{Next: Doubler()})
				},
				CloseInner: stream.Pure(struct{}{}),
			})
		},
		emptyProducer[int](),
	)
}

// TakeN passes through its first n inputs unchanged, then finishes on the
// (n+1)th, reporting it as leftover.
func TakeN[A any](n int) stream.Transformer[A, A] {
	return takeFrom[A](n)
}

func takeFrom[A any](remaining int) stream.Transformer[A, A] {
	return stream.NewTransformer(
		func(a A) stream.Eff[stream.TResult[A, A]] {
			if remaining <= 0 {
				leftover := a
				return stream.Pure[stream.TResult[A, A]](stream.TFinished[A, A]{Leftover: &leftover})
			}
			next := remaining - 1
			return stream.Pure[stream.TResult[A, A]](stream.THaveMore[A, A]{
				Value: a,
				PullMore: func() stream.Eff[stream.TResult[A, A]] {
					return stream.Pure[stream.TResult[A, A]](stream.TRunning[A, A]{Next: takeFrom[A](next)})
				},
				CloseInner: stream.Pure(struct{}{}),
			})
		},
		emptyProducer[A](),
	)
}

// Explode turns each pushed slice into a burst of one output per element.
func Explode[A any]() stream.Transformer[[]A, A] {
	return stream.NewTransformer(
		func(batch []A) stream.Eff[stream.TResult[[]A, A]] { return explodeBurst[A](batch, 0) },
		emptyProducer[A](),
	)
}

func explodeBurst[A any](batch []A, i int) stream.Eff[stream.TResult[[]A, A]] {
	if i >= len(batch) {
		return stream.Pure[stream.TResult[[]A, A]](stream.TRunning[[]A, A]{Next: Explode[A]()})
	}
	return stream.Pure[stream.TResult[[]A, A]](stream.THaveMore[[]A, A]{
		Value: batch[i],
		PullMore: func() stream.Eff[stream.TResult[[]A, A]] {
			return explodeBurst[A](batch, i+1)
		},
		CloseInner: stream.Pure(struct{}{}),
	})
}

// PullCloseCounts records how many times a recorded Producer was pulled
// and closed, used to check close-exactly-once behavior mechanically.
type PullCloseCounts struct {
	Pulls  int
	Closes int
}

// RecordProducer wraps p, counting pulls and closes in the returned
// counters.
func RecordProducer[A any](p stream.Producer[A]) (stream.Producer[A], *PullCloseCounts) {
	counts := &PullCloseCounts{}
	return recordNode(p, counts), counts
}

func recordNode[A any](p stream.Producer[A], counts *PullCloseCounts) stream.Producer[A] {
	return stream.NewProducer(
		func() stream.Eff[stream.PullResult[A]] {
			counts.Pulls++
			return stream.Bind(p.Pull(), func(pr stream.PullResult[A]) stream.Eff[stream.PullResult[A]] {
				switch v := pr.(type) {
				case stream.Open[A]:
					return stream.Pure[stream.PullResult[A]](stream.Open[A]{Next: recordNode(v.Next, counts), Value: v.Value})
				case stream.Closed[A]:
					return stream.Pure[stream.PullResult[A]](stream.Closed[A]{})
				default:
					panic("stream_test: unknown PullResult")
				}
			})
		},
		func() stream.Eff[struct{}] {
			counts.Closes++
			return p.Close()
		},
	)
}
