// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/spin"

// Dequeue removes and returns the element at the head of the chain.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// The consumer that advances popEnd past a slot is the only one allowed to
// recycle it, and does so only after the payload has been moved out. When
// the head is the last linked slot, popEnd is briefly cleared and then
// restored to the same slot, which stays in the chain as a placeholder for
// the next producer to link after.
func (q *Ring[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := slotRef(q.popEnd.LoadAcquire())
		if head == 0 {
			var zero T
			return zero, ErrWouldBlock
		}

		s := q.at(head.index())
		consumed := s.consumed.LoadAcquire()
		next := slotRef(s.next.LoadAcquire())
		if uint64(head) != q.popEnd.LoadAcquire() {
			sw.Once()
			continue
		}

		last := next.isNull()
		if last && consumed == flagSet {
			var zero T
			return zero, ErrWouldBlock
		}

		desired := uint64(next)
		if last {
			desired = 0
		}
		if !q.popEnd.CompareAndSwapAcqRel(uint64(head), desired) {
			sw.Once()
			continue
		}

		var elem T
		took := s.consumed.CompareAndSwapAcqRel(flagClear, flagSet)
		if took {
			elem = s.data
			var zero T
			s.data = zero
		}

		if last {
			if !q.popEnd.CompareAndSwapAcqRel(0, uint64(head)) {
				panic("slotq: placeholder restore lost to a concurrent writer")
			}
		} else {
			q.release(s, head, next)
		}

		if took {
			return elem, nil
		}
		// The head was a placeholder drained by an earlier Dequeue.
	}
}

// Pop dequeues into out and reports whether an element was available.
// On false, out is left untouched.
func (q *Ring[T]) Pop(out *T) bool {
	elem, err := q.Dequeue()
	if err != nil {
		return false
	}
	*out = elem
	return true
}

// release detaches a drained slot from the chain and returns it to the
// free pool. pushEnd is moved off the slot first so that no producer can
// link onto it after it is reused.
func (q *Ring[T]) release(s *slot[T], ref, next slotRef) {
	q.pushEnd.CompareAndSwapAcqRel(uint64(ref), uint64(next))
	q.fill.AddAcqRel(-1)
	if !s.busy.CompareAndSwapAcqRel(flagSet, flagClear) {
		panic("slotq: released slot was not busy")
	}
}
