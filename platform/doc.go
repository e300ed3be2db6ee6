// Copyright 2011 Evan Shaw. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE-MMAP-GO file.

// Modifications (c) 2017 The Memory Authors.

// Package platform is the caller that obtains backing memory from the
// host, kept out of the allocator core by design: memory.BumpAllocator
// and memory.ListAllocator only ever operate on byte slices handed to
// them, never on the OS directly. platform exists so tests and examples
// in this module have a real region to donate, the way a freestanding
// kernel's own page allocator would supply one.
package platform
