// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	value  int   // value for ordering
	height int   // 1 + highest sub-tree height, cached
	size   int   // 1 + total sub-tree nodes, cached
}

// height of a possibly missing sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// node count of a possibly missing sub-tree
func size(p *Node) int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute the cached height and size of a node from its immediate
// children; the children's own cached values must already be correct
func update(p *Node) {
	h := height(p.left)
	if hr := height(p.right); hr > h {
		h = hr
	}
	p.height = 1 + h
	p.size = 1 + size(p.left) + size(p.right)
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(value int) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			value:  value,
			height: 1,
			size:   1,
		}
	}
	p := pool
	pool = p.right
	p.value = value
	p.height = 1
	p.size = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.right = pool // use as free list pointer

	node.left = nil
	node.value = 0
	node.height = 0
	node.size = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// reclaim an entire sub-tree
func freeTree(p *Node) {
	if nil == p {
		return
	}
	freeTree(p.left)
	freeTree(p.right)
	freeNode(p)
}
