// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"os"
	"unsafe"
)

// BumpAllocator allocates by advancing a tip pointer through a single
// caller-supplied region. Dealloc does not reclaim individual allocations;
// the region is only reusable again once outstanding drops back to zero,
// at which point the tip resets to the region's base.
type BumpAllocator struct {
	region      []byte
	base        uintptr
	tip         uintptr
	outstanding uint64
}

// NewBumpAllocator constructs a BumpAllocator over region, which may be
// based at any alignment; alignment is applied per Alloc call, not here.
// NewBumpAllocator takes ownership of region; the caller must not touch it
// again while the BumpAllocator is in use.
func NewBumpAllocator(region []byte) *BumpAllocator {
	a := &BumpAllocator{region: region}
	if len(region) != 0 {
		a.base = uintptr(unsafe.Pointer(&region[0]))
	}
	a.tip = a.base
	return a
}

// Alloc aligns the tip up, bumps it past layout.Size, and fails without
// side effects if that runs past the region's end or overflows an address
// or the outstanding counter.
func (a *BumpAllocator) Alloc(layout Layout) (r []byte, err error) {
	if trace {
		defer func() {
			fmt.Fprintf(os.Stderr, "BumpAllocator.Alloc(%+v) %p, %v\n", layout, dataPtr(r), err)
		}()
	}

	start, ok := AlignUp(a.tip, layout.Align)
	if !ok {
		return nil, ErrNoFit
	}

	end := start + layout.Size
	if end < start {
		return nil, ErrNoFit // overflow
	}

	if end > a.base+uintptr(len(a.region)) {
		return nil, ErrNoFit
	}

	if a.outstanding == ^uint64(0) {
		return nil, ErrNoFit // overflow
	}

	b := sliceAt(start, layout.Size)
	a.outstanding++
	a.tip = end
	return b, nil
}

// Dealloc decrements the outstanding count and, once it reaches zero,
// resets the tip to the region base. It never inspects b or layout: the
// bump allocator has no per-allocation bookkeeping to undo.
func (a *BumpAllocator) Dealloc(b []byte, layout Layout) {
	if trace {
		defer func() {
			fmt.Fprintf(os.Stderr, "BumpAllocator.Dealloc(%p, %+v)\n", dataPtr(b), layout)
		}()
	}

	if a.outstanding == 0 {
		panic("memory: BumpAllocator.Dealloc: outstanding count underflow")
	}

	a.outstanding--
	if a.outstanding == 0 {
		a.tip = a.base
	}
}
