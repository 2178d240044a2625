// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/iox"

// ErrWouldBlock is the only error Enqueue and Dequeue return.
//
// From Enqueue it means the queue is full: no free slot could be claimed
// within one wrap of the ring, or the soft limit is reached.
// From Dequeue it means the queue is empty, possibly only for an instant
// while a concurrent Enqueue or Dequeue is finishing.
//
// Both are expected outcomes on a hot path. The queue never retries across
// its own call boundary; retry, backoff or give-up is up to the caller:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// This is an alias for [iox.ErrWouldBlock].
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err means the queue was full or empty.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err is nil or a control flow signal.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
