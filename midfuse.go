// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// MidFuse composes two transformers end to end, yielding a single
// Transformer[A, C] that pushes A through t1 then through t2 before
// reporting a result.
//
// Pushing one A into the fused transformer may drive t1 and t2 through
// several rounds internally: whenever t1 emits a B without t2 in turn
// emitting a C, MidFuse keeps pulling t1's burst and feeding t2 until a C
// surfaces (THaveMore), either inner transformer finishes (TFinished),
// or both are exhausted. When t1 finishes first, the fused transformer's
// identity switches to draining t1's remaining output through t2 (the
// same composition LeftFuse already performs on a Producer and a
// Transformer), converted back into a TResult burst by
// producerToTResult. When t2 finishes first, CloseInner releases t1's
// paused continuation before the fused transformer reports TFinished.
//
// The fused transformer's own drain — what Close returns — is exactly
// t1's drain run through t2 via LeftFuse, since that is precisely "the
// output remaining once input to the whole pipeline has ceased."
func MidFuse[A, B, C any](t1 Transformer[A, B], t2 Transformer[B, C]) Transformer[A, C] {
	return NewTransformer(
		func(a A) Eff[TResult[A, C]] { return midFusePush(t1, t2, a) },
		LeftFuse(t1.Close(), t2),
	)
}

func midFusePush[A, B, C any](t1 Transformer[A, B], t2 Transformer[B, C], a A) Eff[TResult[A, C]] {
	return Bind(t1.Push(a), func(tr TResult[A, B]) Eff[TResult[A, C]] {
		switch r := tr.(type) {
		case TRunning[A, B]:
			return Pure[TResult[A, C]](TRunning[A, C]{Next: MidFuse(r.Next, t2)})
		case TFinished[A, B]:
			return producerToTResult[A, C](r.Leftover, LeftFuse(t1.Close(), t2))
		case THaveMore[A, B]:
			return midFuseFeed(t1, r.PullMore, r.CloseInner, t2, r.Value)
		default:
			panic("stream: unknown TResult")
		}
	})
}

// midFuseFeed delivers one B value, produced mid-burst by t1, into t2.
func midFuseFeed[A, B, C any](t1 Transformer[A, B], pullMore1 func() Eff[TResult[A, B]], closeInner1 Eff[struct{}], t2 Transformer[B, C], value B) Eff[TResult[A, C]] {
	return Bind(t2.Push(value), func(tr TResult[B, C]) Eff[TResult[A, C]] {
		switch r := tr.(type) {
		case TRunning[B, C]:
			return midFuseBurst1(t1, pullMore1, closeInner1, r.Next)
		case TFinished[B, C]:
			return Bind(closeInner1, func(struct{}) Eff[TResult[A, C]] {
				return Pure[TResult[A, C]](TFinished[A, C]{Leftover: nil})
			})
		case THaveMore[B, C]:
			pullMore2, closeInner2 := r.PullMore, r.CloseInner
			return Pure[TResult[A, C]](THaveMore[A, C]{
				PullMore: func() Eff[TResult[A, C]] {
					return midFuseBurst2(t1, pullMore1, closeInner1, pullMore2, closeInner2)
				},
				CloseInner: Bind(closeInner2, func(struct{}) Eff[struct{}] { return closeInner1 }),
				Value:      r.Value,
			})
		default:
			panic("stream: unknown TResult")
		}
	})
}

// midFuseBurst1 asks t1 for its next burst value (t2 accepted the
// previous one without emitting) and routes it into t2.
func midFuseBurst1[A, B, C any](t1 Transformer[A, B], pullMore1 func() Eff[TResult[A, B]], closeInner1 Eff[struct{}], t2 Transformer[B, C]) Eff[TResult[A, C]] {
	return Bind(pullMore1(), func(tr TResult[A, B]) Eff[TResult[A, C]] {
		switch r := tr.(type) {
		case TRunning[A, B]:
			return Pure[TResult[A, C]](TRunning[A, C]{Next: MidFuse(r.Next, t2)})
		case TFinished[A, B]:
			return producerToTResult[A, C](r.Leftover, LeftFuse(t1.Close(), t2))
		case THaveMore[A, B]:
			return midFuseFeed(t1, r.PullMore, r.CloseInner, t2, r.Value)
		default:
			panic("stream: unknown TResult")
		}
	})
}

// midFuseBurst2 asks t2 for its next burst value without pulling t1
// further; t1's paused continuation (pullMore1, closeInner1) is carried
// along unchanged until t2's own burst ends.
func midFuseBurst2[A, B, C any](t1 Transformer[A, B], pullMore1 func() Eff[TResult[A, B]], closeInner1 Eff[struct{}], pullMore2 func() Eff[TResult[B, C]], closeInner2 Eff[struct{}]) Eff[TResult[A, C]] {
	return Bind(pullMore2(), func(tr TResult[B, C]) Eff[TResult[A, C]] {
		switch r := tr.(type) {
		case TRunning[B, C]:
			return midFuseBurst1(t1, pullMore1, closeInner1, r.Next)
		case TFinished[B, C]:
			return Bind(closeInner1, func(struct{}) Eff[TResult[A, C]] {
				return Pure[TResult[A, C]](TFinished[A, C]{Leftover: nil})
			})
		case THaveMore[B, C]:
			nextPullMore, nextCloseInner := r.PullMore, r.CloseInner
			return Pure[TResult[A, C]](THaveMore[A, C]{
				PullMore: func() Eff[TResult[A, C]] {
					return midFuseBurst2(t1, pullMore1, closeInner1, nextPullMore, nextCloseInner)
				},
				CloseInner: Bind(nextCloseInner, func(struct{}) Eff[struct{}] { return closeInner1 }),
				Value:      r.Value,
			})
		default:
			panic("stream: unknown TResult")
		}
	})
}

// producerToTResult turns the remainder of a Producer[C] into a TResult
// burst: each Open becomes a THaveMore carrying the rest of the
// producer, and Closed becomes TFinished carrying leftover, the A t1
// declined when it finished (nil if t1 ran to exhaustion instead). It is
// used to re-express LeftFuse's Producer[C] (t1's drain run through t2)
// as the fused transformer's own TResult stream once t1 has nothing
// further to push; leftover is threaded through unchanged across every
// THaveMore in the burst since it belongs to the pipeline's input side,
// not to anything t2 does while draining.
func producerToTResult[A, C any](leftover *A, p Producer[C]) Eff[TResult[A, C]] {
	return Bind(p.Pull(), func(pr PullResult[C]) Eff[TResult[A, C]] {
		switch v := pr.(type) {
		case Closed[C]:
			return Pure[TResult[A, C]](TFinished[A, C]{Leftover: leftover})
		case Open[C]:
			next := v.Next
			return Pure[TResult[A, C]](THaveMore[A, C]{
				PullMore:   func() Eff[TResult[A, C]] { return producerToTResult[A, C](leftover, next) },
				CloseInner: next.Close(),
				Value:      v.Value,
			})
		default:
			panic("stream: unknown PullResult")
		}
	})
}
