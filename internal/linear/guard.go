// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package linear provides a one-shot reuse guard for values that must be
// consumed at most once: pulled-then-discarded producers, pushed-then-done
// consumers, and the like. It panics loudly on reuse rather than letting a
// caller silently re-drive a value whose continuation has already moved on.
package linear

import "sync/atomic"

// Guard enforces that an operation happens at most once. The zero value is
// ready to use. A Guard must not be copied after its first Enter call.
type Guard struct {
	used atomic.Uintptr
}

// Enter marks the guard as consumed. It panics with msg if the guard was
// already consumed by a previous Enter call.
func (g *Guard) Enter(msg string) {
	if g.used.Add(1) != 1 {
		panic(msg)
	}
}

// TryEnter attempts to consume the guard. It reports false instead of
// panicking if the guard was already consumed.
func (g *Guard) TryEnter() bool {
	return g.used.Add(1) == 1
}

// Spent reports whether the guard has already been consumed, without
// consuming it itself.
func (g *Guard) Spent() bool {
	return g.used.Load() != 0
}
