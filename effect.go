// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Eff is the ambient effectful context M that every pull, push, and close
// in this package runs inside (see the package doc comment). It is a
// continuation-passing computation whose final-result type is erased to
// any, which is what lets a Producer's pull and a Consumer's push compose
// freely without every pipeline stage agreeing on one concrete final
// answer type ahead of time.
//
// A concrete producer or consumer (a file reader, a socket writer — both
// out of scope for this package) builds its Eff values however it needs
// to: with real I/O, error propagation, or mutable state threaded through
// the continuation. This package never inspects what is inside an Eff; it
// only sequences them. Bind, Map, and Then (monad.go) work on Eff directly
// since Eff is just Cont[any, A].
type Eff[A any] = Cont[any, A]

// Pure lifts a value into Eff with no effects.
func Pure[A any](a A) Eff[A] {
	return Return[any](a)
}
