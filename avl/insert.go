// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a value to the tree
// returns true if a new node was added, false for a duplicate
func (tree *Tree) Insert(value int) bool {
	added := false
	tree.root, added = insert(value, tree.root)
	return added
}

// internal routine for insert
//
// recursive descent to the insertion point then update and rebalance
// every node on the way back up, returning the new sub-tree root
func insert(value int, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(value), true
	}

	added := false
	if value < p.value {
		p.left, added = insert(value, p.left)
	} else if value > p.value {
		p.right, added = insert(value, p.right)
	} else {
		// duplicate value, tree unchanged
		return p, false
	}

	update(p)
	return balance(p), added
}
