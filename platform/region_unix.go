// Copyright 2011 Evan Shaw. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE-MMAP-GO file.

// Modifications (c) 2017 The Memory Authors.

//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package platform

import "golang.org/x/sys/unix"

// NewRegion returns a zeroed, anonymous, page-aligned memory mapping of at
// least size bytes, suitable for donating to a memory.BumpAllocator or
// memory.ListAllocator. The caller must pass the returned slice to
// ReleaseRegion exactly once, after every allocation carved from it has
// been freed.
func NewRegion(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// ReleaseRegion unmaps a region obtained from NewRegion.
func ReleaseRegion(region []byte) error {
	return unix.Munmap(region)
}
