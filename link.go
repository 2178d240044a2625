// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/spin"

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if no free slot could be claimed (queue full).
func (q *Ring[T]) Enqueue(elem *T) error {
	idx, ok := q.claim()
	if !ok {
		return ErrWouldBlock
	}

	s := q.at(idx)
	s.gen++
	s.data = *elem
	s.consumed.StoreRelease(flagClear)
	s.next.StoreRelease(uint64(nullRef(s.gen)))

	q.link(makeRef(idx, s.gen))
	return nil
}

// Push enqueues v and reports whether it was accepted.
// A false result means the queue is full; the caller decides whether to retry.
func (q *Ring[T]) Push(v T) bool {
	return q.Enqueue(&v) == nil
}

// link splices a claimed, populated slot onto the tail of the chain.
//
// Only the producer whose CAS on the tail's next field succeeds may move
// pushEnd to its own slot. Producers that find pushEnd lagging behind an
// already-linked successor move it forward before retrying.
func (q *Ring[T]) link(me slotRef) {
	sw := spin.Wait{}
	for {
		tail := slotRef(q.pushEnd.LoadAcquire())
		if tail == 0 {
			if q.pushEnd.CompareAndSwapAcqRel(0, uint64(me)) {
				// First element ever: the chain had no placeholder yet.
				q.popEnd.StoreRelease(uint64(me))
				return
			}
			continue
		}

		ts := q.at(tail.index())
		next := slotRef(ts.next.LoadAcquire())
		if uint64(tail) != q.pushEnd.LoadAcquire() {
			sw.Once()
			continue
		}

		if next.isNull() {
			// Expecting the tail's own null ref fails if the slot was recycled.
			if ts.next.CompareAndSwapAcqRel(uint64(nullRef(tail.gen())), uint64(me)) {
				q.pushEnd.CompareAndSwapAcqRel(uint64(tail), uint64(me))
				return
			}
		} else {
			q.pushEnd.CompareAndSwapAcqRel(uint64(tail), uint64(next))
		}
		sw.Once()
	}
}
