// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Run drives an Eff[A] to completion and extracts its result.
//
// This is the single place in the package that erases the final result
// type back from any to A; every pull/push/close/Connect/fuse stays fully
// generic over Eff and never calls Run on anything but the outermost
// pipeline result.
func Run[A any](m Eff[A]) A {
	result := m(func(a A) any { return a })
	return result.(A)
}

// RunWith drives an Eff[A] to completion with a custom final continuation,
// useful when the caller wants to fold the result into a larger effect
// rather than extract it immediately.
func RunWith[A any](m Eff[A], k func(A) any) any {
	return m(k)
}
