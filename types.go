// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "unsafe"

// Queue is the combined producer-consumer interface.
//
// Both operations are non-blocking and return ErrWouldBlock when they cannot
// proceed. Length is not part of the interface: any count read from a
// lock-free queue is stale by the time the caller sees it.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs twice.
// The queue stores a copy, so the caller may reuse *elem after Enqueue returns.
type Producer[T any] interface {
	// Enqueue copies *elem into a free slot and links it at the tail.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	// Safe for concurrent use by any number of goroutines.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The slot an element is taken from is cleared before it is recycled, so
// the queue does not keep referenced objects alive.
type Consumer[T any] interface {
	// Dequeue removes and returns the head element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	// Safe for concurrent use by any number of goroutines.
	Dequeue() (T, error)
}

// QueueIndirect carries uintptr values such as pool indices or handles.
type QueueIndirect interface {
	Enqueue(elem uintptr) error
	Dequeue() (uintptr, error)
	Cap() int
}

// QueuePtr carries unsafe.Pointer values for zero-copy hand-off.
//
// The producer transfers ownership of the pointed-to object to whichever
// consumer dequeues it.
type QueuePtr interface {
	Enqueue(elem unsafe.Pointer) error
	Dequeue() (unsafe.Pointer, error)
	Cap() int
}

var (
	_ Queue[int]    = (*Ring[int])(nil)
	_ QueueIndirect = (*RingIndirect)(nil)
	_ QueuePtr      = (*RingPtr)(nil)
)
