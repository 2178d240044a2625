// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "unsafe"

// Options configures queue creation.
type Options struct {
	// Ring size (raised to MinCapacity)
	capacity int

	// Busy-slot count at which Enqueue fails fast (0 = capacity)
	softLimit int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Plain ring, soft limit equal to capacity
//	q := slotq.Build[Event](slotq.New(1024))
//
//	// Push back on producers once a quarter of the ring is in flight
//	q := slotq.BuildRing[Event](slotq.New(1024).SoftLimit(256))
//
//	// Index free list
//	free := slotq.New(4096).BuildIndirect()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity below MinCapacity is raised to MinCapacity; it is not rounded to
// a power of 2.
//
// Example:
//
//	b := slotq.New(1024)
//	q := slotq.Build[int](b)
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: normalizeCapacity(capacity)}}
}

// SoftLimit sets the number of busy slots at which Enqueue returns
// ErrWouldBlock without probing the ring.
//
// The check is a backpressure hint, not a hard bound: concurrent producers
// may overshoot it by the number of goroutines racing past the check.
// Values above the capacity are clamped to the capacity.
//
// Panics if n < 1.
func (b *Builder) SoftLimit(n int) *Builder {
	if n < 1 {
		panic("slotq: soft limit must be >= 1")
	}
	b.opts.softLimit = n
	return b
}

// Build creates a Queue[T] backed by a slot-reuse ring.
func Build[T any](b *Builder) Queue[T] {
	return BuildRing[T](b)
}

// BuildRing creates a *Ring[T] with the builder's configuration.
// Use it when the Push/Pop/Limit methods are needed.
func BuildRing[T any](b *Builder) *Ring[T] {
	return newRing[T](b.opts.capacity, b.opts.softLimit)
}

// BuildIndirect creates a QueueIndirect for uintptr values.
func (b *Builder) BuildIndirect() QueueIndirect {
	return &RingIndirect{r: newRing[uintptr](b.opts.capacity, b.opts.softLimit)}
}

// BuildPtr creates a QueuePtr for unsafe.Pointer values.
func (b *Builder) BuildPtr() QueuePtr {
	return &RingPtr{r: newRing[unsafe.Pointer](b.opts.capacity, b.opts.softLimit)}
}
