// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "unsafe"

// RingIndirect is a slot-reuse queue for uintptr values.
//
// Typical use is a free list of buffer indices shared by many goroutines:
//
//	pool := make([][]byte, 256)
//	free := slotq.NewRingIndirect(256)
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    free.Enqueue(uintptr(i))
//	}
type RingIndirect struct {
	r *Ring[uintptr]
}

// NewRingIndirect creates a slot-reuse queue for uintptr values.
func NewRingIndirect(capacity int) *RingIndirect {
	return &RingIndirect{r: NewRing[uintptr](capacity)}
}

// Enqueue adds a value. Returns ErrWouldBlock if the queue is full.
func (q *RingIndirect) Enqueue(elem uintptr) error {
	return q.r.Enqueue(&elem)
}

// Dequeue removes a value. Returns (0, ErrWouldBlock) if the queue is empty.
func (q *RingIndirect) Dequeue() (uintptr, error) {
	return q.r.Dequeue()
}

// Cap returns the queue capacity.
func (q *RingIndirect) Cap() int {
	return q.r.Cap()
}

// RingPtr is a slot-reuse queue for unsafe.Pointer values.
type RingPtr struct {
	r *Ring[unsafe.Pointer]
}

// NewRingPtr creates a slot-reuse queue for unsafe.Pointer values.
func NewRingPtr(capacity int) *RingPtr {
	return &RingPtr{r: NewRing[unsafe.Pointer](capacity)}
}

// Enqueue adds a pointer. Returns ErrWouldBlock if the queue is full.
func (q *RingPtr) Enqueue(elem unsafe.Pointer) error {
	return q.r.Enqueue(&elem)
}

// Dequeue removes a pointer. Returns (nil, ErrWouldBlock) if the queue is empty.
func (q *RingPtr) Dequeue() (unsafe.Pointer, error) {
	return q.r.Dequeue()
}

// Cap returns the queue capacity.
func (q *RingPtr) Cap() int {
	return q.r.Cap()
}
