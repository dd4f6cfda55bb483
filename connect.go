// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Connect drives a Producer into a Consumer and returns the consumer's
// final result.
//
//   - If the consumer is NoDataConsumer, its value is returned immediately;
//     the producer is neither pulled nor closed.
//   - If the consumer is SuspendConsumer, its deferred computation is run
//     and Connect retries with the resulting consumer.
//   - If the consumer is ActiveConsumer, Connect pulls the producer and
//     pushes each element into the consumer until the producer closes or
//     the consumer is done. On Done, the producer's continuation is
//     closed and any leftover element reported by the consumer is
//     discarded — see ConnectBuffered for the one case where leftover is
//     preserved instead.
func Connect[A, B any](p Producer[A], c Consumer[A, B]) Eff[B] {
	switch cc := c.(type) {
	case NoDataConsumer[A, B]:
		return Pure(cc.Value)
	case SuspendConsumer[A, B]:
		return Bind(cc.Await, func(next Consumer[A, B]) Eff[B] {
			return Connect[A, B](p, next)
		})
	case ActiveConsumer[A, B]:
		return Bind(p.Pull(), func(pr PullResult[A]) Eff[B] {
			switch v := pr.(type) {
			case Closed[A]:
				return cc.Close()
			case Open[A]:
				return Bind(cc.Push(v.Value), func(res PushResult[A, B]) Eff[B] {
					switch r := res.(type) {
					case Done[A, B]:
						return Bind(v.Next.Close(), func(struct{}) Eff[B] {
							return Pure(r.Value)
						})
					case RunningPush[A, B]:
						return Connect[A, B](v.Next, r.Next)
					default:
						panic("stream: unknown PushResult")
					}
				})
			default:
				panic("stream: unknown PullResult")
			}
		})
	default:
		panic("stream: unknown Consumer")
	}
}

// ConnectBuffered drives a BufferedProducer into a Consumer. Unlike
// Connect, the underlying producer is never closed here: on Done, the
// consumer's leftover element (if any) is written back into the buffer
// instead of being discarded, so the very next pull from the buffer
// returns it. The owner of the BufferedProducer, not ConnectBuffered,
// is responsible for eventually closing it.
func ConnectBuffered[A, B any](buf *BufferedProducer[A], c Consumer[A, B]) Eff[B] {
	switch cc := c.(type) {
	case NoDataConsumer[A, B]:
		return Pure(cc.Value)
	case SuspendConsumer[A, B]:
		return Bind(cc.Await, func(next Consumer[A, B]) Eff[B] {
			return ConnectBuffered[A, B](buf, next)
		})
	case ActiveConsumer[A, B]:
		return Bind(buf.pullBuffered(), func(opt *A) Eff[B] {
			if opt == nil {
				return cc.Close()
			}
			return Bind(cc.Push(*opt), func(res PushResult[A, B]) Eff[B] {
				switch r := res.(type) {
				case Done[A, B]:
					buf.unpull(r.Leftover)
					return Pure(r.Value)
				case RunningPush[A, B]:
					return ConnectBuffered[A, B](buf, r.Next)
				default:
					panic("stream: unknown PushResult")
				}
			})
		})
	default:
		panic("stream: unknown Consumer")
	}
}
