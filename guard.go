// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import "code.hybscloud.com/streamcore/internal/linear"

// GuardProducer wraps p so that calling Pull or Close a second time
// panics instead of silently re-running the underlying producer. Every
// Producer in this package is already meant to be used linearly by
// construction; GuardProducer is an opt-in way to turn a violation of
// that contract into an immediate panic during development or testing,
// at the cost of one atomic counter per wrapped value.
func GuardProducer[A any](p Producer[A]) Producer[A] {
	g := new(linear.Guard)
	return NewProducer(
		func() Eff[PullResult[A]] {
			g.Enter("stream: Producer pulled after being spent")
			return p.Pull()
		},
		func() Eff[struct{}] {
			g.Enter("stream: Producer closed after being spent")
			return p.Close()
		},
	)
}

// GuardConsumer wraps an ActiveConsumer so that pushing or closing it
// after it has already reported Done panics instead of silently
// re-entering it. NoDataConsumer and SuspendConsumer pass through
// unguarded: neither accepts input that could be replayed.
func GuardConsumer[A, B any](c Consumer[A, B]) Consumer[A, B] {
	ac, ok := c.(ActiveConsumer[A, B])
	if !ok {
		return c
	}
	g := new(linear.Guard)
	return NewActiveConsumer(
		func(a A) Eff[PushResult[A, B]] {
			g.Enter("stream: Consumer pushed after reporting Done")
			return ac.Push(a)
		},
		func() Eff[B] {
			g.Enter("stream: Consumer closed after reporting Done")
			return ac.Close()
		},
	)
}

// GuardTransformer wraps t so that pushing it after it has reported
// TFinished panics instead of silently re-entering it.
func GuardTransformer[A, B any](t Transformer[A, B]) Transformer[A, B] {
	g := new(linear.Guard)
	return NewTransformer(
		func(a A) Eff[TResult[A, B]] {
			g.Enter("stream: Transformer pushed after reporting TFinished")
			return t.Push(a)
		},
		t.Close(),
	)
}
