// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// RightFuse attaches a Transformer to the input side of a Consumer,
// yielding a new Consumer[A, C] that feeds A values through the
// transformer before they reach the consumer.
//
//   - NoDataConsumer: the consumer already has its result. The
//     transformer never receives input, but its drain is still closed
//     (without being pulled) so any resources it owns are released before
//     the fused consumer reports NoData.
//   - SuspendConsumer: deferred construction composes the same way,
//     wrapped in a new SuspendConsumer.
//   - ActiveConsumer: push′ feeds one A into the transformer. TRunning
//     re-fuses with the transformer's continuation. THaveMore drains the
//     burst of B values into the inner consumer, discarding the inner
//     leftover at this A/B boundary if the inner finishes mid-burst.
//     TFinished means the transformer will accept no further input;
//     push′ then runs the transformer's drain into the inner consumer,
//     exactly as close′ does, and reports Done carrying the transformer's
//     own leftover A (the element it declined), so a caller buffering A
//     values can write it back instead of losing it.
func RightFuse[A, B, C any](t Transformer[A, B], c Consumer[B, C]) Consumer[A, C] {
	switch cc := c.(type) {
	case NoDataConsumer[B, C]:
		return SuspendConsumer[A, C]{
			Await: Bind(t.Close().Close(), func(struct{}) Eff[Consumer[A, C]] {
				return Pure[Consumer[A, C]](NoDataConsumer[A, C]{Value: cc.Value})
			}),
		}
	case SuspendConsumer[B, C]:
		return SuspendConsumer[A, C]{
			Await: Bind(cc.Await, func(next Consumer[B, C]) Eff[Consumer[A, C]] {
				return Pure(RightFuse[A, B, C](t, next))
			}),
		}
	case ActiveConsumer[B, C]:
		return NewActiveConsumer(
			func(a A) Eff[PushResult[A, C]] { return rightFusePush[A, B, C](t, cc, a) },
			func() Eff[C] { return Connect[B, C](t.Close(), cc) },
		)
	default:
		panic("stream: unknown Consumer")
	}
}

func rightFusePush[A, B, C any](t Transformer[A, B], c Consumer[B, C], a A) Eff[PushResult[A, C]] {
	return Bind(t.Push(a), func(tr TResult[A, B]) Eff[PushResult[A, C]] {
		switch r := tr.(type) {
		case TRunning[A, B]:
			return Pure[PushResult[A, C]](RunningPush[A, C]{Next: RightFuse[A, B, C](r.Next, c)})
		case TFinished[A, B]:
			return Bind(Connect[B, C](t.Close(), c), func(v C) Eff[PushResult[A, C]] {
				return Pure[PushResult[A, C]](Done[A, C]{Leftover: r.Leftover, Value: v})
			})
		case THaveMore[A, B]:
			return rightFuseFeed[A, B, C](t, r.PullMore, r.CloseInner, c, r.Value)
		default:
			panic("stream: unknown TResult")
		}
	})
}

// rightFuseFeed delivers one value produced mid-burst to the inner
// consumer, then either continues the burst (if the inner is still
// running) or finalizes (if the inner is done).
func rightFuseFeed[A, B, C any](t Transformer[A, B], pullMore func() Eff[TResult[A, B]], closeInner Eff[struct{}], c Consumer[B, C], value B) Eff[PushResult[A, C]] {
	switch cc := c.(type) {
	case NoDataConsumer[B, C]:
		return Bind(closeInner, func(struct{}) Eff[PushResult[A, C]] {
			return Pure[PushResult[A, C]](Done[A, C]{Leftover: nil, Value: cc.Value})
		})
	case SuspendConsumer[B, C]:
		return Bind(cc.Await, func(next Consumer[B, C]) Eff[PushResult[A, C]] {
			return rightFuseFeed[A, B, C](t, pullMore, closeInner, next, value)
		})
	case ActiveConsumer[B, C]:
		return Bind(cc.Push(value), func(res PushResult[B, C]) Eff[PushResult[A, C]] {
			switch r := res.(type) {
			case Done[B, C]:
				return Bind(closeInner, func(struct{}) Eff[PushResult[A, C]] {
					return Pure[PushResult[A, C]](Done[A, C]{Leftover: nil, Value: r.Value})
				})
			case RunningPush[B, C]:
				return rightFuseBurst[A, B, C](t, pullMore, r.Next)
			default:
				panic("stream: unknown PushResult")
			}
		})
	default:
		panic("stream: unknown Consumer")
	}
}

// rightFuseBurst asks the transformer for the next value in the current
// burst, without feeding it a new A.
func rightFuseBurst[A, B, C any](t Transformer[A, B], pullMore func() Eff[TResult[A, B]], c Consumer[B, C]) Eff[PushResult[A, C]] {
	return Bind(pullMore(), func(tr TResult[A, B]) Eff[PushResult[A, C]] {
		switch r := tr.(type) {
		case TRunning[A, B]:
			return Pure[PushResult[A, C]](RunningPush[A, C]{Next: RightFuse[A, B, C](r.Next, c)})
		case TFinished[A, B]:
			return Bind(Connect[B, C](t.Close(), c), func(v C) Eff[PushResult[A, C]] {
				return Pure[PushResult[A, C]](Done[A, C]{Leftover: r.Leftover, Value: v})
			})
		case THaveMore[A, B]:
			return rightFuseFeed[A, B, C](t, r.PullMore, r.CloseInner, c, r.Value)
		default:
			panic("stream: unknown TResult")
		}
	})
}
