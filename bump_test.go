// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// TestBumpExhaustAndReset exhausts a 16-byte pool with two 8-byte
// allocations, confirms a third fails, and confirms freeing both resets
// the tip back to the region base.
func TestBumpExhaustAndReset(t *testing.T) {
	pool := make([]byte, 16)
	base := uintptr(unsafe.Pointer(&pool[0]))
	a := NewBumpAllocator(pool)
	l8 := Layout{Size: 8, Align: 8}

	x, err := a.Alloc(l8)
	require.NoError(t, err)
	require.EqualValues(t, base, uintptr(unsafe.Pointer(&x[0])))

	y, err := a.Alloc(l8)
	require.NoError(t, err)
	require.EqualValues(t, base+8, uintptr(unsafe.Pointer(&y[0])))

	_, err = a.Alloc(l8)
	require.ErrorIs(t, err, ErrNoFit)

	a.Dealloc(x, l8)
	a.Dealloc(y, l8)

	z, err := a.Alloc(l8)
	require.NoError(t, err)
	require.EqualValues(t, base, uintptr(unsafe.Pointer(&z[0])))
}

// TestBumpPartialFreeDoesNotReset frees one of two live allocations and
// confirms outstanding stays above zero, so the tip does not move and a
// further allocation that would need the freed byte fails.
func TestBumpPartialFreeDoesNotReset(t *testing.T) {
	pool := make([]byte, 16)
	a := NewBumpAllocator(pool)
	l8 := Layout{Size: 8, Align: 8}

	x, err := a.Alloc(l8)
	require.NoError(t, err)

	_, err = a.Alloc(l8)
	require.NoError(t, err)

	a.Dealloc(x, l8)

	_, err = a.Alloc(l8)
	require.ErrorIs(t, err, ErrNoFit)
}

// TestBumpSoleFreeResets is the degenerate single-allocation case of the
// reset law (invariant 4): one alloc, one dealloc, tip back at base.
func TestBumpSoleFreeResets(t *testing.T) {
	pool := make([]byte, 16)
	base := uintptr(unsafe.Pointer(&pool[0]))
	a := NewBumpAllocator(pool)
	l8 := Layout{Size: 8, Align: 8}

	x, err := a.Alloc(l8)
	require.NoError(t, err)
	a.Dealloc(x, l8)

	y, err := a.Alloc(l8)
	require.NoError(t, err)
	require.EqualValues(t, base, uintptr(unsafe.Pointer(&y[0])))
}

// TestBumpOverflowSafety requests an impossibly large size and confirms
// it fails cleanly without touching allocator state.
func TestBumpOverflowSafety(t *testing.T) {
	pool := make([]byte, 16)
	a := NewBumpAllocator(pool)

	_, err := a.Alloc(Layout{Size: ^uintptr(0), Align: 1})
	require.ErrorIs(t, err, ErrNoFit)
	require.EqualValues(t, 0, a.outstanding)
	require.Equal(t, a.base, a.tip)

	// The pool is still fully usable afterwards.
	_, err = a.Alloc(Layout{Size: 16, Align: 1})
	require.NoError(t, err)
}

// TestBumpZeroSizeBumpsOutstanding confirms a zero-size allocation
// consumes no bytes but still counts toward outstanding, so it must be
// freed before the tip can reset.
func TestBumpZeroSizeBumpsOutstanding(t *testing.T) {
	pool := make([]byte, 8)
	a := NewBumpAllocator(pool)

	z, err := a.Alloc(Layout{Size: 0, Align: 1})
	require.NoError(t, err)
	require.Len(t, z, 0)
	require.EqualValues(t, 1, a.outstanding)

	full, err := a.Alloc(Layout{Size: 8, Align: 1})
	require.NoError(t, err)

	a.Dealloc(full, Layout{Size: 8, Align: 1})
	_, err = a.Alloc(Layout{Size: 8, Align: 1})
	require.ErrorIs(t, err, ErrNoFit) // z is still outstanding

	a.Dealloc(z, Layout{Size: 0, Align: 1})
	_, err = a.Alloc(Layout{Size: 8, Align: 1})
	require.NoError(t, err)
}

// TestBumpDeallocUnderflowPanics confirms that freeing more than was
// allocated is a programming error that halts, rather than silently
// underflowing the counter.
func TestBumpDeallocUnderflowPanics(t *testing.T) {
	pool := make([]byte, 8)
	a := NewBumpAllocator(pool)

	require.Panics(t, func() {
		a.Dealloc(pool[:1], Layout{Size: 1, Align: 1})
	})
}
