// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

// AlignUp rounds addr up to the nearest multiple of align and reports
// whether the computation succeeded. It fails, returning (0, false), if
// align is not a power of two or if rounding addr up would overflow a
// uintptr. AlignUp touches no memory; it is pure address arithmetic.
func AlignUp(addr, align uintptr) (_ uintptr, ok bool) {
	if align == 0 || align&(align-1) != 0 {
		return 0, false
	}

	if addr&(align-1) == 0 {
		return addr, true
	}

	masked := addr | (align - 1)
	if masked == ^uintptr(0) {
		return 0, false
	}

	return masked + 1, true
}
