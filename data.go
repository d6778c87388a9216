// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

// Cloner is implemented by captured data whose copy must not share state
// with the original, such as slices or maps wrapped in a named type.
// Clone on a closure uses it when available and plain assignment otherwise.
type Cloner[T any] interface {
	Clone() T
}

func cloneData[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Capturer is anything that can give back its captured data.
// All base and union closures, and [Captured], implement it.
type Capturer[C any] interface {
	IntoCapturedData() C
}

// Equal reports whether a and b hold equal captured data.
// Functions are not compared; two closures over equal data are equal.
//
// Union closures compare through their OneOfN data, which is comparable
// whenever every slot type is.
func Equal[C comparable](a, b Capturer[C]) bool {
	return a.IntoCapturedData() == b.IntoCapturedData()
}

// EqualFunc is like [Equal] but compares the captured data with eq.
func EqualFunc[C any](a, b Capturer[C], eq func(C, C) bool) bool {
	return eq(a.IntoCapturedData(), b.IntoCapturedData())
}
