// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Transformer is a push-driven A→B stage: pushing one input may finish
// the transformer, ready it for another input, or emit a burst of output
// values through HaveMore before the next input is accepted.
//
// Close is itself a Producer[B]: the drain. After input ceases (the
// upstream producer is exhausted), the transformer may still have a tail
// of B values to emit before it is truly done — the drain is how that
// tail composes uniformly through LeftFuse, RightFuse, and MidFuse
// without any of them needing a special case for "one more flush."
type Transformer[A, B any] struct {
	push  func(A) Eff[TResult[A, B]]
	drain Producer[B]
}

// NewTransformer builds a Transformer from its push action and drain
// producer.
func NewTransformer[A, B any](push func(A) Eff[TResult[A, B]], drain Producer[B]) Transformer[A, B] {
	return Transformer[A, B]{push: push, drain: drain}
}

// Push feeds one input element into the transformer.
func (t Transformer[A, B]) Push(a A) Eff[TResult[A, B]] {
	return t.push(a)
}

// Close returns the transformer's drain: a Producer[B] of any output
// remaining once input has ceased. The fuser, not the transformer, decides
// when to drive or close this producer.
func (t Transformer[A, B]) Close() Producer[B] {
	return t.drain
}

// TResult is the outcome of pushing an element into a Transformer.
type TResult[A, B any] interface {
	tResult()
}

// TRunning reports the transformer consumed its input without emitting
// output and is ready for the next input via Next.
type TRunning[A, B any] struct {
	Next Transformer[A, B]
}

func (TRunning[A, B]) tResult() {}

// TFinished terminates the transformer. Leftover, when non-nil, is the
// single un-consumed input element that caused termination. The
// transformer's drain has not yet been invoked when TFinished is
// returned — the fuser decides whether to invoke it.
type TFinished[A, B any] struct {
	Leftover *A
}

func (TFinished[A, B]) tResult() {}

// THaveMore reports that the transformer emitted one B without consuming
// further input. PullMore requests the next TResult in the same burst
// without feeding a new A; CloseInner finalizes the burst early if the
// caller stops pulling before the burst ends on its own.
type THaveMore[A, B any] struct {
	PullMore   func() Eff[TResult[A, B]]
	CloseInner Eff[struct{}]
	Value      B
}

func (THaveMore[A, B]) tResult() {}
