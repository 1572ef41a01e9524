// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// balance factor of a possibly missing sub-tree
// positive = left heavy, negative = right heavy
func getBalance(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// single right rotation
//
//	      y              x
//	     / \            / \
//	    x   C    →     A   y
//	   / \                / \
//	  A   B              B   C
//
// re-links one child pointer pair then recomputes the cached height
// and size of the two nodes involved, child before parent
func rotateRight(y *Node) *Node {
	x := y.left
	t := x.right

	x.right = y
	y.left = t

	update(y)
	update(x)

	return x
}

// single left rotation, mirror of rotateRight
func rotateLeft(x *Node) *Node {
	y := x.right
	t := y.left

	y.left = x
	x.right = t

	update(x)
	update(y)

	return y
}

// rebalance the sub-tree rooted at p
//
// p's own height and size must already be updated and both of its
// sub-trees must already be AVL balanced; at most one single or one
// double rotation is performed
func balance(p *Node) *Node {
	bf := getBalance(p)

	if bf > 1 { // left heavy
		if getBalance(p.left) < 0 {
			// left-right case
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}

	if bf < -1 { // right heavy
		if getBalance(p.right) > 0 {
			// right-left case
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}

	return p
}
