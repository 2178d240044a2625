// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"

	"code.hybscloud.com/slotq/internal/arena"
)

const (
	// MinCapacity is the smallest ring size. Smaller requests are raised to it.
	MinCapacity = 8

	// DefaultCapacity is a general-purpose ring size.
	DefaultCapacity = 1024

	// MaxCapacity is the largest ring size a 32-bit slot index can address
	// while keeping index+1 non-zero.
	MaxCapacity = 1<<32 - 2
)

// Ring is a lock-free multi-producer multi-consumer bounded queue that
// never allocates after construction.
//
// A fixed ring of slots is threaded into a singly-linked FIFO chain.
// Producers claim a free slot by probing the ring with a rotating cursor,
// write the element in place and splice the slot onto the tail of the chain
// (Michael-Scott style). Consumers advance the head of the chain and return
// each drained slot to the free pool, except the last one, which stays in
// the chain as a placeholder until a newer slot is linked after it.
//
// Slots are addressed by generation-tagged indices, so a goroutine holding
// a stale reference to a recycled slot always fails its compare-and-swap.
//
// Memory: n slots for capacity n, element stored in place (24 bytes + T per slot)
type Ring[T any] struct {
	_        cpu.CacheLinePad
	pushEnd  atomix.Uint64 // slotRef of the logical tail, 0 before the first push
	_        cpu.CacheLinePad
	popEnd   atomix.Uint64 // slotRef of the logical head, 0 while empty
	_        cpu.CacheLinePad
	cursor   atomix.Uint64 // Producer probe position in [0, capacity)
	_        cpu.CacheLinePad
	fill     atomix.Int64 // Busy slots, including the placeholder
	_        cpu.CacheLinePad
	slots    *arena.Arena[slot[T]]
	capacity uint64
	limit    int64 // Soft-full threshold on fill
}

// NewRing creates a slot-reuse MPMC queue.
// Capacity below MinCapacity is raised to MinCapacity.
// Panics if capacity > MaxCapacity.
func NewRing[T any](capacity int) *Ring[T] {
	return newRing[T](capacity, 0)
}

func newRing[T any](capacity int, limit int) *Ring[T] {
	n := normalizeCapacity(capacity)

	q := &Ring[T]{
		slots:    arena.New[slot[T]](n),
		capacity: uint64(n),
		limit:    int64(clampLimit(limit, n)),
	}
	for range n {
		q.slots.Add()
	}

	return q
}

func normalizeCapacity(capacity int) int {
	if capacity > 0 && uint64(capacity) > MaxCapacity {
		panic("slotq: capacity exceeds MaxCapacity")
	}
	if capacity < MinCapacity {
		return MinCapacity
	}
	return capacity
}

// clampLimit maps a requested soft limit into [1, n]. Zero or negative
// means no soft limit beyond the ring size.
func clampLimit(limit, n int) int {
	if limit <= 0 || limit > n {
		return n
	}
	return limit
}

func (q *Ring[T]) at(idx uint32) *slot[T] {
	return q.slots.At(int(idx))
}

// Cap returns the queue capacity.
func (q *Ring[T]) Cap() int {
	return int(q.capacity)
}

// Limit returns the soft-full threshold: Enqueue fails fast once this many
// slots are busy.
func (q *Ring[T]) Limit() int {
	return int(q.limit)
}
