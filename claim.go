// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/spin"

// claim finds a free slot and marks it busy.
//
// Winning the cursor CAS only grants the right to probe that position; the
// busy CAS is what actually takes the slot. A lost busy CAS counts as one
// probe. After a full wrap of failed probes, or when the soft limit is
// reached, claim reports false.
func (q *Ring[T]) claim() (uint32, bool) {
	if q.fill.LoadRelaxed() >= q.limit {
		return 0, false
	}

	sw := spin.Wait{}
	for probes := uint64(0); probes < q.capacity; {
		cur := q.cursor.LoadAcquire()
		next := cur + 1
		if next >= q.capacity {
			next = 0
		}
		if !q.cursor.CompareAndSwapAcqRel(cur, next) {
			sw.Once()
			continue
		}

		s := q.at(uint32(cur))
		if s.busy.CompareAndSwapAcqRel(flagClear, flagSet) {
			q.fill.AddAcqRel(1)
			return uint32(cur), true
		}
		probes++
	}
	return 0, false
}
