// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
//
// read from the root's cached size, O(1)
func (tree *Tree) Count() int {
	return size(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Value - read the value from a node
func (p *Node) Value() int {
	return p.value
}

// Height - read the cached height of the sub-tree rooted at a node
func (p *Node) Height() int {
	return p.height
}

// Size - read the cached node count of the sub-tree rooted at a node
func (p *Node) Size() int {
	return p.size
}

// Left - return left child node of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return right child node of a node
func (p *Node) Right() *Node {
	return p.right
}
