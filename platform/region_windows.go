// Copyright 2011 Evan Shaw. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE-MMAP-GO file.

// Modifications (c) 2017 The Memory Authors.

//go:build windows

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mmap on Windows is a two-step process: CreateFileMapping gets a handle,
// then MapViewOfFile gets an actual address. handles lets ReleaseRegion
// find the handle back from the address NewRegion returned.
var handles = map[uintptr]windows.Handle{}

// NewRegion returns a zeroed memory mapping of at least size bytes,
// suitable for donating to a memory.BumpAllocator or memory.ListAllocator.
// The caller must pass the returned slice to ReleaseRegion exactly once.
func NewRegion(size int) ([]byte, error) {
	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE, 0, uint32(size), nil)
	if err != nil {
		return nil, err
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, err
	}

	handles[addr] = h
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// ReleaseRegion unmaps a region obtained from NewRegion and closes its
// backing file-mapping handle.
func ReleaseRegion(region []byte) error {
	if len(region) == 0 {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&region[0]))
	if err := windows.UnmapViewOfFile(addr); err != nil {
		return err
	}

	h, ok := handles[addr]
	if !ok {
		return nil
	}

	delete(handles, addr)
	return windows.CloseHandle(h)
}
