// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Flush wraps a stream of A values with an out-of-band signal that a
// downstream buffer (a file handle, a network write, a batch accumulator)
// should flush whatever it has accumulated so far, without itself being
// a data value. A Producer[Flush[A]] or Transformer[Flush[A], B] composes
// with the rest of this package exactly like any other element type —
// Flush is a value, not a side channel.
type Flush[A any] interface {
	flush()
}

// Chunk carries one ordinary data value through a Flush[A]-typed stream.
type Chunk[A any] struct {
	Value A
}

func (Chunk[A]) flush() {}

// FlushSignal carries no data; its presence is the signal itself.
type FlushSignal[A any] struct{}

func (FlushSignal[A]) flush() {}

// MapFlush maps the data carried by a Flush[A], leaving any FlushSignal
// untouched. It is the functor action used to lift an ordinary A→B
// mapping over a Flush[A]-typed stream without disturbing its flush
// signals.
func MapFlush[A, B any](f func(A) B, fl Flush[A]) Flush[B] {
	switch v := fl.(type) {
	case Chunk[A]:
		return Chunk[B]{Value: f(v.Value)}
	case FlushSignal[A]:
		return FlushSignal[B]{}
	default:
		panic("stream: unknown Flush")
	}
}
