// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"os"
	"unsafe"
)

// nodeHeader is the in-place header written at the front of every free
// region on a ListAllocator's list. size covers the whole region,
// including the header itself.
type nodeHeader struct {
	size uintptr
	next *nodeHeader
}

const (
	nodeHeaderSize  = unsafe.Sizeof(nodeHeader{})
	nodeHeaderAlign = unsafe.Alignof(nodeHeader{})
)

// ListAllocator is a first-fit allocator over a singly linked free list
// threaded through one or more caller-donated regions, with node headers
// stored in place at the front of each free region. Its zero value is an
// empty allocator ready for AddFreeRegion; NewListAllocator is equivalent
// and exists for parity with NewBumpAllocator.
type ListAllocator struct {
	head nodeHeader // dummy sentinel: head.size is always 0, only head.next participates

	// donated roots every region ever passed to AddFreeRegion so the Go
	// garbage collector can't reclaim memory the free list still
	// reaches only through unsafe.Pointer-derived node headers.
	donated [][]byte
}

// NewListAllocator returns a new, empty ListAllocator.
func NewListAllocator() *ListAllocator {
	return &ListAllocator{}
}

// AddFreeRegion donates region to the free list, pushing it to the front
// in O(1). region's base must be aligned to alignof(NodeHeader) and
// len(region) must be at least sizeof(NodeHeader); either violation is a
// programming error and AddFreeRegion panics rather than returning
// ErrNoFit. AddFreeRegion may be called any number of times, including
// while allocations from earlier donations are still outstanding.
func (a *ListAllocator) AddFreeRegion(region []byte) {
	if trace {
		defer func() {
			fmt.Fprintf(os.Stderr, "ListAllocator.AddFreeRegion(%p, %#x)\n", dataPtr(region), len(region))
		}()
	}

	if len(region) == 0 {
		panic("memory: AddFreeRegion: empty region")
	}

	if uintptr(unsafe.Pointer(&region[0]))%nodeHeaderAlign != 0 {
		panic("memory: AddFreeRegion: region base is not aligned to alignof(NodeHeader)")
	}

	if uintptr(len(region)) < nodeHeaderSize {
		panic("memory: AddFreeRegion: region smaller than sizeof(NodeHeader)")
	}

	a.donated = append(a.donated, region)
	a.pushFree(region)
}

// pushFree is AddFreeRegion's unchecked core: it writes the header and
// links the region in. It skips AddFreeRegion's preconditions and GC
// rooting: AddFreeRegion calls it only after those checks, and its other
// two callers (Alloc's tail split and Dealloc) hand it ranges that are already alignment- and size-correct by
// construction, and whose backing array is already rooted by the
// AddFreeRegion call that donated it originally.
func (a *ListAllocator) pushFree(region []byte) {
	hdr := (*nodeHeader)(unsafe.Pointer(&region[0]))
	hdr.size = uintptr(len(region))
	hdr.next = a.head.next
	a.head.next = hdr
}

// adjustLayout widens a requested layout so that the range Alloc carves
// out is, once freed, itself large and aligned enough to host a
// NodeHeader: raise the alignment to at least alignof(NodeHeader), pad
// the size up to a multiple of that alignment, then raise the size to at
// least sizeof(NodeHeader). The same widening applies to any tail split
// off of it.
func adjustLayout(layout Layout) Layout {
	align := layout.Align
	if align < nodeHeaderAlign {
		align = nodeHeaderAlign
	}

	size := roundup(layout.Size, align)
	if size < nodeHeaderSize {
		size = nodeHeaderSize
	}

	return Layout{Size: size, Align: align}
}

// roundup rounds n up to the next multiple of m. m must be a power of two.
func roundup(n, m uintptr) uintptr { return (n + m - 1) &^ (m - 1) }

// Alloc walks the free list for the first region that fits the adjusted
// layout (first-fit), unlinks it, and re-donates any leftover tail large
// enough to host another NodeHeader. A region offering a fit whose excess
// tail is nonzero but smaller than a NodeHeader is skipped, since accepting
// it would leave a sliver too small to ever represent again.
func (a *ListAllocator) Alloc(layout Layout) (r []byte, err error) {
	if trace {
		defer func() {
			fmt.Fprintf(os.Stderr, "ListAllocator.Alloc(%+v) %p, %v\n", layout, dataPtr(r), err)
		}()
	}

	adjusted := adjustLayout(layout)
	if adjusted.Size < layout.Size {
		return nil, ErrNoFit // size overflowed while rounding up
	}

	prev := &a.head
	for cur := a.head.next; cur != nil; prev, cur = cur, cur.next {
		regionBase := uintptr(unsafe.Pointer(cur))
		regionEnd := regionBase + cur.size

		start, ok := AlignUp(regionBase, adjusted.Align)
		if !ok {
			continue
		}

		end := start + adjusted.Size
		if end < start || end > regionEnd {
			continue
		}

		excess := regionEnd - end
		if excess > 0 && excess < nodeHeaderSize {
			continue
		}

		prev.next = cur.next

		if excess > 0 {
			a.pushFree(sliceAt(end, excess))
		}

		full := sliceAt(start, adjusted.Size)
		return full[:layout.Size:adjusted.Size], nil
	}

	return nil, ErrNoFit
}

// Dealloc re-adjusts layout exactly as Alloc did and re-inserts the whole
// adjusted-size range at b's base, not the original donation's base.
// layout must be the exact value passed to the Alloc call that produced b;
// passing anything else silently re-inserts the wrong size.
func (a *ListAllocator) Dealloc(b []byte, layout Layout) {
	if trace {
		defer func() {
			fmt.Fprintf(os.Stderr, "ListAllocator.Dealloc(%p, %+v)\n", dataPtr(b), layout)
		}()
	}

	adjusted := adjustLayout(layout)
	// unsafe.SliceData, not &b[0]: b may be a zero-length slice (layout.Size
	// 0 is legal) whose backing array is still cap(b) bytes long.
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a.pushFree(sliceAt(addr, adjusted.Size))
}

// FreeBytes walks the free list and sums the size of every region on it,
// NodeHeaders included. It is O(n) in the number of free regions and
// exists for tests and diagnostics, not for use on any allocation path.
func (a *ListAllocator) FreeBytes() uintptr {
	var total uintptr
	for cur := a.head.next; cur != nil; cur = cur.next {
		total += cur.size
	}

	return total
}
