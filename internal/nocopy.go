// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal

import (
	"reflect"
	"sync/atomic"
)

// NoCopy detects a struct that is copied by value after its first use.
// Embed it as a field and call Check from the methods of the struct.
type NoCopy[T any] struct {
	self atomic.Pointer[NoCopy[T]]
}

// Check records the address of the receiver on first use,
// and panics if it is called on a copy afterwards.
func (n *NoCopy[T]) Check() {
	if n.self.CompareAndSwap(nil, n) || n.self.Load() == n {
		return
	}

	panic(reflect.TypeFor[T]().String() + " is copied by value after first use")
}
