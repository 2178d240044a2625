// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "testing"

func TestSlotRefEncoding(t *testing.T) {
	tests := []struct {
		idx, gen uint32
	}{
		{0, 0},
		{0, 1},
		{7, 3},
		{MaxCapacity - 1, 1<<32 - 1},
	}

	for _, tt := range tests {
		r := makeRef(tt.idx, tt.gen)
		if r == 0 || r.isNull() {
			t.Fatalf("makeRef(%d, %d) = %#x: must not be null", tt.idx, tt.gen, uint64(r))
		}
		if r.index() != tt.idx {
			t.Fatalf("index: got %d, want %d", r.index(), tt.idx)
		}
		if r.gen() != tt.gen {
			t.Fatalf("gen: got %d, want %d", r.gen(), tt.gen)
		}
		if n := nullRef(tt.gen); !n.isNull() || n.gen() != tt.gen {
			t.Fatalf("nullRef(%d) = %#x", tt.gen, uint64(n))
		}
	}

	// Same index, different incarnation must compare unequal.
	if makeRef(3, 1) == makeRef(3, 2) {
		t.Fatal("refs of different generations compare equal")
	}
	if nullRef(1) == nullRef(2) {
		t.Fatal("null refs of different generations compare equal")
	}
}

func TestNormalizeCapacity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, MinCapacity},
		{0, MinCapacity},
		{1, MinCapacity},
		{MinCapacity - 1, MinCapacity},
		{MinCapacity, MinCapacity},
		{9, 9},
		{1000, 1000},
	}
	for _, tt := range tests {
		if got := normalizeCapacity(tt.in); got != tt.want {
			t.Errorf("normalizeCapacity(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		limit, n, want int
	}{
		{0, 8, 8},
		{-1, 8, 8},
		{1, 8, 1},
		{4, 8, 4},
		{8, 8, 8},
		{100, 8, 8},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.limit, tt.n); got != tt.want {
			t.Errorf("clampLimit(%d, %d): got %d, want %d", tt.limit, tt.n, got, tt.want)
		}
	}
}

// TestClaimRotates verifies the allocator hands out slots in cursor order
// and wraps at capacity.
func TestClaimRotates(t *testing.T) {
	q := NewRing[int](MinCapacity)

	for i := range MinCapacity {
		idx, ok := q.claim()
		if !ok {
			t.Fatalf("claim(%d): got false", i)
		}
		if idx != uint32(i) {
			t.Fatalf("claim(%d): got slot %d", i, idx)
		}
	}
	if q.cursor.Load() != 0 {
		t.Fatalf("cursor after full wrap: got %d, want 0", q.cursor.Load())
	}
	if _, ok := q.claim(); ok {
		t.Fatal("claim on fully busy ring: got true")
	}
	if q.fill.Load() != MinCapacity {
		t.Fatalf("fill: got %d, want %d", q.fill.Load(), MinCapacity)
	}
}

// TestClaimSkipsBusy verifies a busy slot costs one probe and the next free
// slot is taken instead.
func TestClaimSkipsBusy(t *testing.T) {
	q := NewRing[int](MinCapacity)
	q.at(0).busy.Store(flagSet)
	q.at(1).busy.Store(flagSet)

	idx, ok := q.claim()
	if !ok || idx != 2 {
		t.Fatalf("claim: got (%d, %v), want (2, true)", idx, ok)
	}
}

func TestClaimSoftLimit(t *testing.T) {
	q := newRing[int](MinCapacity, 3)

	for i := range 3 {
		if _, ok := q.claim(); !ok {
			t.Fatalf("claim(%d): got false", i)
		}
	}
	if _, ok := q.claim(); ok {
		t.Fatal("claim past soft limit: got true")
	}
	// The gate trips before the cursor moves.
	if q.cursor.Load() != 3 {
		t.Fatalf("cursor: got %d, want 3", q.cursor.Load())
	}
}

// TestPlaceholderLifecycle walks one slot through claim, link, drain,
// placeholder and release.
func TestPlaceholderLifecycle(t *testing.T) {
	q := NewRing[int](MinCapacity)

	v := 10
	if err := q.Enqueue(&v); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	first := slotRef(q.popEnd.Load())
	if first != makeRef(0, 1) {
		t.Fatalf("popEnd: got %#x, want %#x", uint64(first), uint64(makeRef(0, 1)))
	}
	if q.pushEnd.Load() != uint64(first) {
		t.Fatal("pushEnd and popEnd differ for a single element")
	}

	got, err := q.Dequeue()
	if err != nil || got != 10 {
		t.Fatalf("Dequeue: got (%d, %v), want (10, nil)", got, err)
	}

	// Drained last slot stays as placeholder: still busy, consumed, head.
	s0 := q.at(0)
	if s0.busy.Load() != flagSet || s0.consumed.Load() != flagSet {
		t.Fatal("placeholder: want busy and consumed")
	}
	if q.popEnd.Load() != uint64(first) {
		t.Fatal("popEnd not restored to placeholder")
	}
	if q.fill.Load() != 1 {
		t.Fatalf("fill with placeholder: got %d, want 1", q.fill.Load())
	}
	if _, err := q.Dequeue(); !IsWouldBlock(err) {
		t.Fatalf("Dequeue on placeholder: got %v, want ErrWouldBlock", err)
	}

	v = 20
	if err := q.Enqueue(&v); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	second := makeRef(1, 1)
	if slotRef(s0.next.Load()) != second {
		t.Fatalf("placeholder next: got %#x, want %#x", s0.next.Load(), uint64(second))
	}

	got, err = q.Dequeue()
	if err != nil || got != 20 {
		t.Fatalf("Dequeue: got (%d, %v), want (20, nil)", got, err)
	}
	if s0.busy.Load() != flagClear {
		t.Fatal("superseded placeholder not released")
	}
	if q.popEnd.Load() != uint64(second) {
		t.Fatal("popEnd not on new placeholder")
	}
	if q.fill.Load() != 1 {
		t.Fatalf("fill: got %d, want 1", q.fill.Load())
	}
}

// TestGenerationBump verifies a recycled slot gets a new identity, so a
// reference to its previous incarnation no longer matches.
func TestGenerationBump(t *testing.T) {
	q := NewRing[int](MinCapacity)

	// Cycle enough elements to wrap the ring and reuse slot 0.
	for i := range 3 * MinCapacity {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
		if got, err := q.Dequeue(); err != nil || got != i {
			t.Fatalf("Dequeue(%d): got (%d, %v)", i, got, err)
		}
	}

	if g := q.at(0).gen; g < 2 {
		t.Fatalf("slot 0 generation: got %d, want >= 2", g)
	}
	stale := nullRef(1)
	if q.at(0).next.CompareAndSwapAcqRel(uint64(stale), uint64(makeRef(5, 9))) {
		t.Fatal("CAS with stale null ref succeeded on recycled slot")
	}
}

// TestDequeueClearsPayload verifies the slot does not keep the element
// reachable after it is moved out.
func TestDequeueClearsPayload(t *testing.T) {
	q := NewRing[*int](MinCapacity)

	for i := range 4 {
		v := new(int)
		*v = i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := range 4 {
		if _, err := q.Dequeue(); err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
	}
	for i := range q.Cap() {
		if q.at(uint32(i)).data != nil {
			t.Fatalf("slot %d still references its element", i)
		}
	}
}
