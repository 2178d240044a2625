// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/atomix"

// Flag values for slot.busy and slot.consumed.
const (
	flagClear uint64 = 0
	flagSet   uint64 = 1
)

// slotRef identifies one incarnation of a slot.
//
// Layout: high 32 bits = generation, low 32 bits = index+1.
// A ref whose low 32 bits are zero names no slot. The all-zero ref is the
// "chain empty" sentinel for pushEnd and popEnd; a tail slot's next field
// holds gen<<32 so that it can only be linked by a producer that observed
// that same incarnation.
type slotRef uint64

const refIndexMask = 1<<32 - 1

func makeRef(idx, gen uint32) slotRef {
	return slotRef(uint64(gen)<<32 | uint64(idx+1))
}

// nullRef is the "no successor" value for a slot of generation gen.
func nullRef(gen uint32) slotRef {
	return slotRef(uint64(gen) << 32)
}

func (r slotRef) isNull() bool {
	return r&refIndexMask == 0
}

func (r slotRef) index() uint32 {
	return uint32(r&refIndexMask) - 1
}

func (r slotRef) gen() uint32 {
	return uint32(r >> 32)
}

// slot is one ring cell.
//
// Lifecycle: free (busy=0) → claimed (busy=1, payload being written) →
// linked (consumed=0) → consumed (consumed=1) → free, or kept as the
// placeholder while it is still the tail of the chain.
type slot[T any] struct {
	next     atomix.Uint64 // slotRef of the successor, or nullRef(gen)
	busy     atomix.Uint64
	consumed atomix.Uint64
	gen      uint32 // Written only by the goroutine holding busy
	data     T
}
