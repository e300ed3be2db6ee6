// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import "unsafe"

// sliceAt synthesizes a []byte of the given length starting at addr. addr
// does not need to be the base of any Go slice currently in scope; it is
// recovered purely from an address, the same way the free-list node
// pointers are. The caller is responsible for addr+length staying within
// memory a donated region keeps alive.
func sliceAt(addr, length uintptr) []byte {
	if length == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(length))
}

// dataPtr returns &b[0], or nil for an empty slice. Used only by trace
// logging, so that a zero-length slice never panics on &b[0].
func dataPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}

	return unsafe.Pointer(&b[0])
}
