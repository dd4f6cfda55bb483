// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stream provides a small streaming core: composable producers,
// consumers, and transformers over an ambient effect context, with
// explicit control over when resources are released.
//
// # Design Philosophy
//
// The package provides:
//   - Three core shapes — [Producer], [Consumer], [Transformer] — each a
//     miniature state machine described by a sum-typed result
//   - A single ambient effect context, [Eff], used for every blocking or
//     effectful step so that execution strategy is decided by the caller
//     of [Run], not by the components themselves
//   - Composition operators ([Connect], [LeftFuse], [RightFuse],
//     [MidFuse]) that thread these shapes together without ever losing
//     track of who is responsible for closing what
//
// # Effect Context
//
// [Eff] is a continuation-passing computation: a function that accepts a
// continuation and produces a result. It is built on the smaller [Cont]
// type, which keeps the final answer type explicit at each call site.
//
//   - [Cont]: compile-time-typed continuation-passing computation
//   - [Return], [Suspend]: lift a value, or a CPS function, into a [Cont]
//   - [Bind], [Map], [Then]: sequence, transform, or sequence-and-discard
//   - [Pure]: lift a value into [Eff]
//   - [Run], [RunWith]: execute an [Eff] to obtain its result
//
// # Producers
//
// A [Producer] is a pull-driven source: each [Producer.Pull] either
// yields a value and a new producer, or reports the source is
// exhausted.
//
//   - [Producer.Pull]: request the next element
//   - [Producer.Close]: release the source without pulling further
//   - [PullResult], [Open], [Closed]: the result of a pull
//
// [BufferedProducer] wraps a producer to make it resumable across many
// [ConnectBuffered] calls and adds a one-slot pushback for leftover
// elements a consumer declined:
//
//   - [NewBufferedProducer], [ConnectBuffered]
//   - [Unbuffer]: convert back into a plain, one-shot [Producer]
//
// # Consumers
//
// A [Consumer] is a push-driven sink that eventually yields a result. It
// is one of three shapes:
//
//   - [NoDataConsumer]: already has its result
//   - [SuspendConsumer]: defers constructing the real consumer inside [Eff]
//   - [ActiveConsumer]: accepts pushed elements one at a time
//   - [PushResult], [Done], [RunningPush]: the result of a push
//
// # Transformers
//
// A [Transformer] is a push-driven A→B stage. Pushing may finish the
// stage, ready it for more input, or emit a burst of output before the
// next input is accepted. Its Close is itself a [Producer]: the drain of
// output remaining once input has ceased.
//
//   - [TResult], [TRunning], [TFinished], [THaveMore]: the result of a push
//
// # Composition
//
//   - [Connect]: drive a [Producer] into a [Consumer], returning its result
//   - [LeftFuse]: attach a [Transformer] to a [Producer]'s output, yielding
//     a [Producer]
//   - [LeftFuseBuffered]: the [BufferedProducer] counterpart of [LeftFuse]
//   - [RightFuse]: attach a [Transformer] to a [Consumer]'s input, yielding
//     a [Consumer]
//   - [MidFuse]: compose two transformers end to end into one [Transformer]
//
// # Linear Use
//
// Every [Producer], [Consumer], and [Transformer] value is meant to be
// used linearly: once a producer yields [Closed], or a consumer reports
// [Done], or a transformer reports [TFinished], that value is spent and
// must not be pulled, pushed, or closed again. This package does not
// enforce that by default, to keep these values cheap and value-typed.
// [GuardProducer], [GuardConsumer], and [GuardTransformer] wrap a value
// with a one-shot panic guard for development and testing.
//
// # Flush Signals
//
// [Flush] carries an out-of-band "flush what you have" signal alongside
// ordinary data in a stream, for stages such as batch writers that need
// to know when to push a partial batch out early.
//
//   - [Chunk], [FlushSignal]: the two shapes of a [Flush] value
//   - [MapFlush]: lift an A→B function over a [Flush[A]]
package stream
