// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Consumer is a push-driven sink of A values that eventually produces a
// final result B. It is one of three variants:
//
//   - NoDataConsumer already holds its result and consumes nothing — this
//     is why Connect inspects the consumer before ever touching the
//     producer.
//   - SuspendConsumer defers constructing the real consumer inside Eff.
//   - ActiveConsumer accepts pushed elements one at a time.
//
// Like Producer, a Consumer is used linearly: once an ActiveConsumer's
// push returns Done, or once Close has been called, neither may be
// called again on that value.
type Consumer[A, B any] interface {
	consumer()
}

// NoDataConsumer already has its result; Connect returns Value immediately
// without pulling or closing the producer.
type NoDataConsumer[A, B any] struct {
	Value B
}

func (NoDataConsumer[A, B]) consumer() {}

// SuspendConsumer defers consumer construction inside the effect context.
// Connect runs Await and retries with the consumer it produces.
type SuspendConsumer[A, B any] struct {
	Await Eff[Consumer[A, B]]
}

func (SuspendConsumer[A, B]) consumer() {}

// ActiveConsumer accepts pushed elements and can also be closed without
// further input.
type ActiveConsumer[A, B any] struct {
	push  func(A) Eff[PushResult[A, B]]
	close func() Eff[B]
}

func (ActiveConsumer[A, B]) consumer() {}

// NewActiveConsumer builds an ActiveConsumer from its push and close
// actions, returned as a Consumer[A, B].
func NewActiveConsumer[A, B any](push func(A) Eff[PushResult[A, B]], close func() Eff[B]) Consumer[A, B] {
	return ActiveConsumer[A, B]{push: push, close: close}
}

// Push feeds one element into the consumer.
func (c ActiveConsumer[A, B]) Push(a A) Eff[PushResult[A, B]] {
	return c.push(a)
}

// Close finalizes the consumer without further input, yielding its
// result.
func (c ActiveConsumer[A, B]) Close() Eff[B] {
	return c.close()
}

// PushResult is the outcome of pushing an element into an ActiveConsumer.
type PushResult[A, B any] interface {
	pushResult()
}

// Done reports that the consumer has finished. Leftover, when non-nil,
// is the single un-consumed element that caused termination.
type Done[A, B any] struct {
	Leftover *A
	Value    B
}

func (Done[A, B]) pushResult() {}

// RunningPush reports that the consumer accepted the pushed element and
// is ready for more input via Next.
type RunningPush[A, B any] struct {
	Next Consumer[A, B]
}

func (RunningPush[A, B]) pushResult() {}
