// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slotq provides a bounded lock-free MPMC queue that reuses a fixed
// ring of slots and never allocates after construction.
//
// # Quick Start
//
//	q := slotq.NewRing[Event](1024)
//
//	ev := Event{ID: 1}
//	if err := q.Enqueue(&ev); slotq.IsWouldBlock(err) {
//	    // Full - apply backpressure
//	}
//
//	ev, err := q.Dequeue()
//	if slotq.IsWouldBlock(err) {
//	    // Empty - try again later
//	}
//
// Boolean forms are available when an error value is not wanted:
//
//	if !q.Push(ev) { ... }
//
//	var out Event
//	if q.Pop(&out) { ... }
//
// Builder API:
//
//	q := slotq.Build[Event](slotq.New(1024))
//	q := slotq.BuildRing[Event](slotq.New(1024).SoftLimit(256))
//	free := slotq.New(4096).BuildIndirect()  // uintptr handles
//	ptrs := slotq.New(4096).BuildPtr()       // unsafe.Pointer hand-off
//
// # Algorithm
//
// The ring holds n slots. Each slot carries the element in place, the
// reference of its successor in the logical chain, and two flags: busy
// (slot is in use) and consumed (payload already taken).
//
// Enqueue:
//
//  1. Claim: advance a shared rotating cursor with CAS, then CAS the probed
//     slot's busy flag from clear to set. A busy slot costs one probe; a
//     full wrap of busy slots means the queue is full.
//  2. Write the element, clear consumed, reset next.
//  3. Link: CAS the tail slot's next from null to the new slot, then swing
//     the tail cursor (Michael-Scott). A lagging tail cursor is helped
//     forward by whoever notices it.
//
// Dequeue:
//
//  1. Read the head cursor. Zero, or a consumed head with no successor,
//     means empty.
//  2. CAS the head cursor to the successor, then CAS consumed from clear to
//     set. Only that winner moves the element out.
//  3. With a successor, the drained slot is released to the free pool.
//     Without one, the head cursor is restored to it and the slot stays in
//     the chain as a placeholder until the next Enqueue links after it.
//
// Slot references are (generation, index+1) pairs packed in 64 bits. Every
// claim bumps the slot's generation, so a CAS carrying a reference to an
// earlier incarnation of a recycled slot fails instead of corrupting the
// chain. Index+1 keeps every live reference non-zero; zero is the empty
// sentinel.
//
// # Capacity
//
// Capacity is used as given, with a floor of MinCapacity:
//
//	slotq.NewRing[int](3)     // Actual capacity: 8
//	slotq.NewRing[int](1000)  // Actual capacity: 1000
//
// The slot drained last stays busy as a placeholder until a newer element
// is linked after it and the next Dequeue moves past it. A queue that has
// been drained therefore accepts n-1 elements before reporting full.
//
// SoftLimit makes Enqueue fail fast once a given number of slots are busy.
// It is a backpressure hint checked before probing, not a hard bound.
//
// # Progress and Ordering
//
// Enqueue and Dequeue are lock-free, not wait-free: a goroutine may retry a
// CAS many times under contention, but some goroutine always makes progress.
// Neither operation blocks, sleeps or performs I/O.
//
// Elements from one producer are dequeued in the order that producer
// enqueued them. Elements from different producers are ordered by which
// link CAS won, not by submission time.
//
// Dequeue may report ErrWouldBlock for an instant while another consumer is
// restoring the placeholder. Callers that spin on Dequeue see the element on
// a later attempt.
//
// # Error Handling
//
// Enqueue and Dequeue return only [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox]. Internal invariant violations panic.
//
//	backoff := iox.Backoff{}
//	for {
//	    elem, err := q.Dequeue()
//	    if err == nil {
//	        backoff.Reset()
//	        process(elem)
//	        continue
//	    }
//	    backoff.Wait()
//	}
//
// # Race Detection
//
// Elements are written and read as plain memory, ordered by acquire-release
// operations on separate atomix words. The race detector does not observe
// that ordering and reports false positives on concurrent generic queues.
// Concurrent tests are skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomics with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause in retry loops,
// [code.hybscloud.com/iox] for semantic errors, and [golang.org/x/sys/cpu]
// for cache line padding.
package slotq
