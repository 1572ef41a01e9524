// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - find the index'th smallest value in the tree (zero based)
//
// fault.ErrIndexOutOfRange if index < 0 or index >= Count()
//
// the range check at entry guarantees a matching node exists, so
// falling off the tree means the cached sizes are wrong and
// fault.ErrCorruptTree is returned
func (tree *Tree) Get(index int) (int, error) {
	if index < 0 || index >= tree.Count() {
		return 0, fault.ErrIndexOutOfRange
	}

	p := tree.root
	for nil != p {
		nl := size(p.left)

		if index < nl {
			p = p.left
		} else if index > nl {
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		} else {
			return p.value, nil
		}
	}

	return 0, fault.ErrCorruptTree
}

// IndexOf - zero based in-order rank of a value
// returns -1 if the value is not in the tree
func (tree *Tree) IndexOf(value int) int {
	index := 0
	p := tree.root
	for nil != p {
		if value < p.value {
			p = p.left
		} else if value > p.value {
			// skip over the left sub-tree and this node
			index += size(p.left) + 1
			p = p.right
		} else {
			return index + size(p.left)
		}
	}
	return -1
}
