// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if a specific value is in the tree
func (tree *Tree) Search(value int) bool {
	p := tree.root
	for nil != p {
		if value < p.value {
			p = p.left
		} else if value > p.value {
			p = p.right
		} else {
			return true
		}
	}
	return false
}
