// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// token marking a missing sub-tree in the serialized form
const nilMarker = "nil"

// Serialize - dump the tree to a comma separated token stream
//
// tokens are emitted in preorder (node, left, right) with every
// missing sub-tree written as the nil marker, so the text fully
// determines the node structure; an empty tree gives an empty string
func (tree *Tree) Serialize() string {
	if nil == tree.root {
		return ""
	}
	tokens := appendPreorder(make([]string, 0, 2*tree.Count()+1), tree.root)
	return strings.Join(tokens, ",")
}

// internal: preorder token emitter
func appendPreorder(tokens []string, p *Node) []string {
	if nil == p {
		return append(tokens, nilMarker)
	}
	tokens = append(tokens, strconv.Itoa(p.value))
	tokens = appendPreorder(tokens, p.left)
	return appendPreorder(tokens, p.right)
}

// Deserialize - rebuild a tree from its Serialize text
//
// the result is a new fully independent tree; possible errors are:
//   fault.ErrMalformedSerialization - non-integer where a value is expected
//   fault.ErrUnexpectedEndOfData    - token stream ends mid-structure
// no partial tree is ever returned
func Deserialize(s string) (*Tree, error) {
	tree := New()
	if "" == s {
		return tree, nil
	}

	root, _, err := fromPreorder(strings.Split(s, ","))
	if nil != err {
		return nil, err
	}

	// construction can only assign the leaf defaults, so recompute
	// every cached height and size bottom-up
	fixup(root)

	tree.root = root
	return tree, nil
}

// internal: consume one preorder sub-tree from the front of tokens
// returns the remaining tokens
func fromPreorder(tokens []string) (*Node, []string, error) {
	if 0 == len(tokens) {
		return nil, nil, fault.ErrUnexpectedEndOfData
	}

	t := tokens[0]
	tokens = tokens[1:]
	if nilMarker == t {
		return nil, tokens, nil
	}

	value, err := strconv.Atoi(t)
	if nil != err {
		return nil, nil, fault.ErrMalformedSerialization
	}

	p := newNode(value)
	p.left, tokens, err = fromPreorder(tokens)
	if nil == err {
		p.right, tokens, err = fromPreorder(tokens)
	}
	if nil != err {
		freeTree(p)
		return nil, nil, err
	}
	return p, tokens, nil
}

// internal: post-order recompute of every cached height and size
func fixup(p *Node) {
	if nil == p {
		return
	}
	fixup(p.left)
	fixup(p.right)
	update(p)
}
