// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Producer is a pull-driven source of A values.
//
// A Producer is used linearly: Pull consumes it and yields, on Open, the
// continuation producer for the next pull. A caller must not call Pull or
// Close on the same Producer value more than once — after Pull returns
// Closed, the producer must not be pulled again; after Close, it must not
// be pulled or closed again. Exactly one of those two events finalizes a
// given producer on any execution path. This package does not enforce
// that at the type level (see GuardProducer for an opt-in runtime check);
// every combinator in this package honors it by construction.
type Producer[A any] struct {
	pull  func() Eff[PullResult[A]]
	close func() Eff[struct{}]
}

// NewProducer builds a Producer from its pull and close actions.
func NewProducer[A any](pull func() Eff[PullResult[A]], close func() Eff[struct{}]) Producer[A] {
	return Producer[A]{pull: pull, close: close}
}

// Pull requests the next element. It returns Closed if the producer is
// exhausted, or Open carrying the element and the continuation producer.
func (p Producer[A]) Pull() Eff[PullResult[A]] {
	return p.pull()
}

// Close releases any resources held by the producer without pulling
// further elements.
func (p Producer[A]) Close() Eff[struct{}] {
	return p.close()
}

// PullResult is the outcome of pulling a Producer[A]: either Closed or
// Open(next, value).
type PullResult[A any] interface {
	pullResult()
}

// Closed reports that a Producer has no more elements. Once observed, the
// producer that returned it must not be pulled again.
type Closed[A any] struct{}

func (Closed[A]) pullResult() {}

// Open carries the next element together with the continuation producer
// that must be used for any further pulls or closes in place of the one
// that was just pulled.
type Open[A any] struct {
	Next  Producer[A]
	Value A
}

func (Open[A]) pullResult() {}
