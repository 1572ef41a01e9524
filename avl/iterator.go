// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the lowest value in the tree
// the second result is false for an empty tree
func (tree *Tree) First() (int, bool) {
	if nil == tree.root {
		return 0, false
	}
	return minimumNode(tree.root).value, true
}

// Last - return the highest value in the tree
// the second result is false for an empty tree
func (tree *Tree) Last() (int, bool) {
	if nil == tree.root {
		return 0, false
	}
	p := tree.root
	for nil != p.right {
		p = p.right
	}
	return p.value, true
}

// Walk - in-order traversal, lowest value first
// traversal stops early if fn returns false
func (tree *Tree) Walk(fn func(value int) bool) {
	walk(tree.root, fn)
}

// internal: in-order walk of a sub-tree, false = stopped
func walk(p *Node, fn func(value int) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, fn) {
		return false
	}
	if !fn(p.value) {
		return false
	}
	return walk(p.right, fn)
}

// Values - all values in ascending order
func (tree *Tree) Values() []int {
	values := make([]int, 0, tree.Count())
	tree.Walk(func(value int) bool {
		values = append(values, value)
		return true
	})
	return values
}
