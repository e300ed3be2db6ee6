// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory implements a pair of low-level allocators for
// freestanding environments: a bump allocator and a first-fit linked-list
// allocator. Both manage caller-supplied byte regions and hand out
// sub-ranges satisfying a requested (size, align) Layout; neither talks to
// the OS, allocates from the Go heap on the hot path, or is safe for
// concurrent use by more than one goroutine at a time.
//
// The bump allocator (BumpAllocator) allocates by advancing a tip pointer
// through a single region and reclaims everything in bulk once every
// outstanding allocation has been freed. The linked-list allocator
// (ListAllocator) threads a singly linked free list through one or more
// donated regions, storing its node headers in place at the front of each
// free region, and supports freeing allocations individually at the cost
// of no coalescing.
package memory
