// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

// Layout describes an allocation request: Size bytes aligned to Align,
// which must be a power of two.
type Layout struct {
	Size  uintptr
	Align uintptr
}
