// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import "errors"

// ErrNoFit is returned by Alloc when no currently-free range satisfies the
// requested Layout. It carries no distinction between "out of memory" and
// "fragmented", since callers treat both identically.
var ErrNoFit = errors.New("memory: no fit")

// Allocator is the shared contract both allocators in this package
// implement. Neither operation blocks, performs I/O, or is reentrant on
// the same Allocator value; concurrent use by more than one goroutine is a
// usage error the caller must prevent with external synchronization.
type Allocator interface {
	// Alloc returns a range of exactly layout.Size bytes whose address
	// satisfies layout.Align, or ErrNoFit if no such range is
	// currently available. A successful return is disjoint from every
	// other live allocation and from every region still on a free
	// list. Alloc never writes the bytes it returns.
	Alloc(layout Layout) ([]byte, error)

	// Dealloc returns a range previously produced by Alloc back to the
	// allocator. b and layout must be exactly the values Alloc was
	// called with and returned; passing a mismatched layout, or a
	// range this Allocator did not produce, is a usage error with
	// undefined results.
	Dealloc(b []byte, layout Layout)
}

var (
	_ Allocator = (*BumpAllocator)(nil)
	_ Allocator = (*ListAllocator)(nil)
)
