// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// LeftFuse attaches a Transformer to the output side of a Producer,
// yielding a new Producer[B] whose pulls drive the underlying producer
// through the transformer.
//
// One external Pull on the fused producer may pull and push several times
// internally: if the transformer answers TRunning without emitting
// output, LeftFuse keeps pulling upstream and feeding the transformer
// until it either emits a B (THaveMore), terminates (TFinished), or the
// upstream producer closes — at which point the transformer's drain
// becomes the fused producer's tail, switching the fused producer's
// identity to the drain for all subsequent pulls.
//
// On TFinished, any leftover input reported by the transformer is
// discarded (see DESIGN.md Open Question 1) and the current upstream
// producer is closed. Closing the fused producer explicitly (before it
// has run to completion) runs the transformer's drain to its own closure,
// then closes the upstream producer; an upstreamGuard makes this safe to
// call even if TFinished already closed the same upstream producer
// internally during a preceding Pull.
func LeftFuse[A, B any](p Producer[A], t Transformer[A, B]) Producer[B] {
	return leftFuseNode(p, t, new(upstreamGuard[A]))
}

// upstreamGuard ensures a given upstream Producer[A] is closed at most
// once, regardless of whether that close happens inside a Pull (because
// the transformer finished) or via an explicit external Close call on the
// fused producer handle that observed the Pull's result.
type upstreamGuard[A any] struct {
	closed bool
}

func (g *upstreamGuard[A]) closeOnce(p Producer[A]) Eff[struct{}] {
	if g.closed {
		return Pure(struct{}{})
	}
	g.closed = true
	return p.Close()
}

func leftFuseNode[A, B any](p Producer[A], t Transformer[A, B], g *upstreamGuard[A]) Producer[B] {
	return NewProducer(
		func() Eff[PullResult[B]] { return leftFusePull(p, t, g) },
		func() Eff[struct{}] {
			return Bind(t.Close().Close(), func(struct{}) Eff[struct{}] {
				return g.closeOnce(p)
			})
		},
	)
}

func leftFusePull[A, B any](p Producer[A], t Transformer[A, B], g *upstreamGuard[A]) Eff[PullResult[B]] {
	return Bind(p.Pull(), func(pr PullResult[A]) Eff[PullResult[B]] {
		switch v := pr.(type) {
		case Closed[A]:
			// p finalized itself by yielding Closed; the fused producer's
			// identity switches to the drain for every pull from here on.
			g.closed = true
			return t.Close().Pull()
		case Open[A]:
			return Bind(t.Push(v.Value), func(tr TResult[A, B]) Eff[PullResult[B]] {
				switch r := tr.(type) {
				case TFinished[A, B]:
					return Bind(g.closeOnce(v.Next), func(struct{}) Eff[PullResult[B]] {
						return Pure[PullResult[B]](Closed[B]{})
					})
				case THaveMore[A, B]:
					next := leftFuseHaveMore(v.Next, r.PullMore, r.CloseInner, g)
					return Pure[PullResult[B]](Open[B]{Next: next, Value: r.Value})
				case TRunning[A, B]:
					return leftFusePull(v.Next, r.Next, g)
				default:
					panic("stream: unknown TResult")
				}
			})
		default:
			panic("stream: unknown PullResult")
		}
	})
}

func leftFuseHaveMore[A, B any](p Producer[A], pullMore func() Eff[TResult[A, B]], closeInner Eff[struct{}], g *upstreamGuard[A]) Producer[B] {
	return NewProducer(
		func() Eff[PullResult[B]] {
			return Bind(pullMore(), func(tr TResult[A, B]) Eff[PullResult[B]] {
				switch r := tr.(type) {
				case TFinished[A, B]:
					return Bind(g.closeOnce(p), func(struct{}) Eff[PullResult[B]] {
						return Pure[PullResult[B]](Closed[B]{})
					})
				case THaveMore[A, B]:
					next := leftFuseHaveMore(p, r.PullMore, r.CloseInner, g)
					return Pure[PullResult[B]](Open[B]{Next: next, Value: r.Value})
				case TRunning[A, B]:
					return leftFusePull(p, r.Next, g)
				default:
					panic("stream: unknown TResult")
				}
			})
		},
		func() Eff[struct{}] {
			return Bind(closeInner, func(struct{}) Eff[struct{}] {
				return g.closeOnce(p)
			})
		},
	)
}

// LeftFuseBuffered is the BufferedProducer counterpart of LeftFuse
// (spec.md §4.5): pulls go through buf's pullBuffered instead of a plain
// Producer.Pull, a TFinished leftover is written back into buf via unpull
// rather than discarded, and the returned fused producer's Close is a
// no-op — buf outlives the fused producer and is closed by its owner, not
// by whatever consumed this Producer[B].
func LeftFuseBuffered[A, B any](buf *BufferedProducer[A], t Transformer[A, B]) Producer[B] {
	return NewProducer(
		func() Eff[PullResult[B]] { return leftFuseBufferedPull(buf, t) },
		func() Eff[struct{}] { return Pure(struct{}{}) },
	)
}

func leftFuseBufferedPull[A, B any](buf *BufferedProducer[A], t Transformer[A, B]) Eff[PullResult[B]] {
	return Bind(buf.pullBuffered(), func(opt *A) Eff[PullResult[B]] {
		if opt == nil {
			return t.Close().Pull()
		}
		return Bind(t.Push(*opt), func(tr TResult[A, B]) Eff[PullResult[B]] {
			switch r := tr.(type) {
			case TFinished[A, B]:
				buf.unpull(r.Leftover)
				return Pure[PullResult[B]](Closed[B]{})
			case THaveMore[A, B]:
				next := leftFuseBufferedHaveMore(buf, r.PullMore, r.CloseInner)
				return Pure[PullResult[B]](Open[B]{Next: next, Value: r.Value})
			case TRunning[A, B]:
				return leftFuseBufferedPull(buf, r.Next)
			default:
				panic("stream: unknown TResult")
			}
		})
	})
}

func leftFuseBufferedHaveMore[A, B any](buf *BufferedProducer[A], pullMore func() Eff[TResult[A, B]], closeInner Eff[struct{}]) Producer[B] {
	return NewProducer(
		func() Eff[PullResult[B]] {
			return Bind(pullMore(), func(tr TResult[A, B]) Eff[PullResult[B]] {
				switch r := tr.(type) {
				case TFinished[A, B]:
					buf.unpull(r.Leftover)
					return Pure[PullResult[B]](Closed[B]{})
				case THaveMore[A, B]:
					next := leftFuseBufferedHaveMore(buf, r.PullMore, r.CloseInner)
					return Pure[PullResult[B]](Open[B]{Next: next, Value: r.Value})
				case TRunning[A, B]:
					return leftFuseBufferedPull(buf, r.Next)
				default:
					panic("stream: unknown TResult")
				}
			})
		},
		func() Eff[struct{}] { return closeInner },
	)
}
