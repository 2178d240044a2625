// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package slotq

// RaceEnabled is true when the race detector is active.
// Tests use it to skip concurrent runs: the in-place payload is published
// through atomix flag and cursor words the detector does not track.
const RaceEnabled = true
