// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckBalance - verify the AVL height rule and every cached height
// by measuring each sub-tree from scratch
func (tree *Tree) CheckBalance() bool {
	_, ok := checkHeight(tree.root)
	return ok
}

// internal: measured height of a sub-tree, false on any mismatch
func checkHeight(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkHeight(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeight(p.right)
	if !ok {
		return 0, false
	}

	d := hl - hr
	if d < -1 || d > 1 {
		return 0, false
	}

	h := hl
	if hr > h {
		h = hr
	}
	h += 1
	if h != p.height {
		return 0, false
	}
	return h, true
}

// CheckCounts - verify every cached sub-tree size by counting each
// sub-tree from scratch
func (tree *Tree) CheckCounts() bool {
	_, ok := checkCount(tree.root)
	return ok
}

// internal: counted size of a sub-tree, false on any mismatch
func checkCount(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCount(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCount(p.right)
	if !ok {
		return 0, false
	}

	n := 1 + nl + nr
	if n != p.size {
		return 0, false
	}
	return n, true
}

// CheckOrder - verify that an in-order traversal yields a strictly
// increasing sequence of values
func (tree *Tree) CheckOrder() bool {
	ok := true
	first := true
	prev := 0
	tree.Walk(func(value int) bool {
		if !first && value <= prev {
			ok = false
			return false
		}
		first = false
		prev = value
		return true
	})
	return ok
}
