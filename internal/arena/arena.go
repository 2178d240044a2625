// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arena provides fixed-capacity storage with stable element addresses.
//
// An Arena reserves its backing array once at construction. Elements are
// appended during initialization with Add and accessed afterwards with At.
// The backing array is never grown or moved, so a pointer returned by At
// stays valid for the lifetime of the Arena.
package arena

// Arena is a fixed-capacity store of E values with stable addresses.
//
// Add is not safe for concurrent use and is meant for single-threaded
// initialization. At may be called concurrently once initialization is done;
// synchronizing access to the returned element is the caller's job.
type Arena[E any] struct {
	items []E
}

// New reserves storage for exactly capacity elements.
// Panics if capacity < 0.
func New[E any](capacity int) *Arena[E] {
	if capacity < 0 {
		panic("arena: negative capacity")
	}
	return &Arena[E]{items: make([]E, 0, capacity)}
}

// Add appends one zero-valued element.
// Returns false if the arena is already full.
func (a *Arena[E]) Add() bool {
	if len(a.items) == cap(a.items) {
		return false
	}
	var zero E
	a.items = append(a.items, zero)
	return true
}

// At returns a pointer to the i-th element.
// Panics if i is not in [0, Len()).
func (a *Arena[E]) At(i int) *E {
	if uint(i) >= uint(len(a.items)) {
		panic("arena: index out of range")
	}
	return &a.items[i]
}

// Len returns the number of elements added so far.
func (a *Arena[E]) Len() int {
	return len(a.items)
}

// Cap returns the fixed capacity.
func (a *Arena[E]) Cap() int {
	return cap(a.items)
}
