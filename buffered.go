// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// BufferedProducer wraps a Producer[A] to make it resumable across
// multiple ConnectBuffered calls and to support a one-slot pushback:
// a leftover element that a consumer declines to consume can be unpulled
// and observed by the very next pull.
//
// Unlike Producer and Consumer, BufferedProducer is mutable and is the
// only component in this package with interior state. Per spec, its
// single mutable cell is accessed non-atomically; concurrent use from
// multiple goroutines is not supported and is explicitly a caller risk —
// this is a deliberate departure from the atomic one-shot guards used
// elsewhere in this package (see GuardProducer), because BufferedProducer
// is meant to be driven repeatedly by a single owner across many
// sequential ConnectBuffered calls, not consumed exactly once.
//
// Lifecycle: created OpenEmpty via NewBufferedProducer, may move through
// any of the four states below, and must be explicitly closed by its
// owner — ConnectBuffered never closes it.
type BufferedProducer[A any] struct {
	tag     cellTag
	live    Producer[A] // valid when tag is cellOpenEmpty or cellOpenFull
	pending A           // valid when tag is cellOpenFull or cellClosedFull
}

// cellTag names the four legal states of a BufferedProducer's cell:
//
//	OpenEmpty(p)    underlying producer p is live; no pushed-back element
//	OpenFull(p, a)  underlying producer p is live; element a is pending
//	ClosedEmpty     underlying producer closed; nothing pending
//	ClosedFull(a)   underlying producer closed; element a still pending
type cellTag uint8

const (
	cellOpenEmpty cellTag = iota
	cellOpenFull
	cellClosedEmpty
	cellClosedFull
)

// NewBufferedProducer wraps p, starting in the OpenEmpty state.
func NewBufferedProducer[A any](p Producer[A]) *BufferedProducer[A] {
	return &BufferedProducer[A]{tag: cellOpenEmpty, live: p}
}

// pullBuffered implements spec.md §4.5's pull_buffered: returns a non-nil
// *A on success, or nil when the buffer is exhausted (closed and empty).
func (b *BufferedProducer[A]) pullBuffered() Eff[*A] {
	switch b.tag {
	case cellOpenEmpty:
		return Bind(b.live.Pull(), func(pr PullResult[A]) Eff[*A] {
			switch v := pr.(type) {
			case Open[A]:
				b.tag = cellOpenEmpty
				b.live = v.Next
				a := v.Value
				return Pure(&a)
			case Closed[A]:
				b.tag = cellClosedEmpty
				var zero A
				b.pending = zero
				return Pure[*A](nil)
			default:
				panic("stream: unknown PullResult")
			}
		})
	case cellOpenFull:
		a := b.pending
		var zero A
		b.pending = zero
		b.tag = cellOpenEmpty
		return Pure(&a)
	case cellClosedEmpty:
		return Pure[*A](nil)
	case cellClosedFull:
		a := b.pending
		var zero A
		b.pending = zero
		b.tag = cellClosedEmpty
		return Pure(&a)
	default:
		panic("stream: corrupt BufferedProducer state")
	}
}

// unpull implements spec.md §4.5's unpull. A nil opt is a no-op. A non-nil
// opt may only be pushed back onto an Empty state — pushing onto a Full
// state is an invariant violation and panics, since the one-slot
// pushback must never be overwritten.
func (b *BufferedProducer[A]) unpull(opt *A) {
	if opt == nil {
		return
	}
	switch b.tag {
	case cellOpenEmpty:
		b.tag = cellOpenFull
		b.pending = *opt
	case cellClosedEmpty:
		b.tag = cellClosedFull
		b.pending = *opt
	default:
		panic("stream: unpull onto a full BufferedProducer buffer")
	}
}

// Close implements spec.md §4.5's close_buffered: if the underlying
// producer is live, it is closed and the state moves to the corresponding
// Closed* variant. A pending element is kept (OpenFull becomes
// ClosedFull) and is still returned by the next pullBuffered, or first by
// the Producer that Unbuffer builds; only the underlying producer is gone.
// Idempotent: closing twice is observationally equivalent to once.
func (b *BufferedProducer[A]) Close() Eff[struct{}] {
	switch b.tag {
	case cellOpenEmpty:
		live := b.live
		b.tag = cellClosedEmpty
		b.live = Producer[A]{}
		return live.Close()
	case cellOpenFull:
		live := b.live
		b.tag = cellClosedFull
		b.live = Producer[A]{}
		return live.Close()
	case cellClosedEmpty, cellClosedFull:
		return Pure(struct{}{})
	default:
		panic("stream: corrupt BufferedProducer state")
	}
}

// Unbuffer converts the BufferedProducer into a plain Producer[A]: the
// result first yields any pushed-back element, then continues with the
// underlying producer (or is immediately Closed if the underlying
// producer was already closed). This is destructive — it reads the
// buffer's state exactly once and the BufferedProducer must not be used
// through pullBuffered/unpull/Close afterward; per spec this is "no going
// back," and this package does not proactively close the old buffer
// handle on unbuffer (see DESIGN.md Open Question 2).
func Unbuffer[A any](b *BufferedProducer[A]) Producer[A] {
	switch b.tag {
	case cellOpenEmpty:
		return b.live
	case cellOpenFull:
		a := b.pending
		return prependOne(a, b.live)
	case cellClosedEmpty:
		return NewProducer(
			func() Eff[PullResult[A]] { return Pure[PullResult[A]](Closed[A]{}) },
			func() Eff[struct{}] { return Pure(struct{}{}) },
		)
	case cellClosedFull:
		a := b.pending
		closedTail := NewProducer(
			func() Eff[PullResult[A]] { return Pure[PullResult[A]](Closed[A]{}) },
			func() Eff[struct{}] { return Pure(struct{}{}) },
		)
		return prependOne(a, closedTail)
	default:
		panic("stream: corrupt BufferedProducer state")
	}
}

// prependOne returns a Producer that yields a once, then continues with
// rest. It is used only by Unbuffer and is pulled or closed at most once
// by construction, like every other Producer this package hands out.
func prependOne[A any](a A, rest Producer[A]) Producer[A] {
	return NewProducer(
		func() Eff[PullResult[A]] {
			return Pure[PullResult[A]](Open[A]{Next: rest, Value: a})
		},
		func() Eff[struct{}] {
			return rest.Close()
		},
	)
}
