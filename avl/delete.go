// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a value from the tree
// returns true if a node was removed, false if the value was not present
func (tree *Tree) Delete(value int) bool {
	removed := false
	tree.root, removed = delete(value, tree.root)
	return removed
}

// internal delete routine
//
// same descent shape as insert; a node with two children is not
// unlinked, its value is overwritten with the in-order successor's
// value and the successor is removed from the right sub-tree instead,
// so the node physically unlinked always has at most one child
func delete(value int, p *Node) (*Node, bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	if value < p.value {
		p.left, removed = delete(value, p.left)
	} else if value > p.value {
		p.right, removed = delete(value, p.right)
	} else { // found: delete p
		removed = true
		if nil == p.left || nil == p.right {
			q := p.left
			if nil == q {
				q = p.right
			}
			freeNode(p) // return deleted node to pool
			p = q       // may be nil
		} else {
			succ := minimumNode(p.right)
			p.value = succ.value
			p.right, _ = delete(succ.value, p.right)
		}
	}

	if nil == p {
		return nil, removed
	}

	update(p)
	return balance(p), removed
}

// lowest node in a sub-tree
// the caller guarantees a non-empty sub-tree
func minimumNode(p *Node) *Node {
	for nil != p.left {
		p = p.left
	}
	return p
}
