// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// build the reference tree used by the order statistics tests
func sampleTree() *avl.Tree {
	tree := avl.New()
	for _, value := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(value)
	}
	return tree
}

func TestOrderStatistics(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, 7, tree.Count(), "count")
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Values(), "in-order values")

	first, err := tree.Get(0)
	assert.NoError(t, err, "get: 0")
	assert.Equal(t, 1, first, "lowest value")

	last, err := tree.Get(6)
	assert.NoError(t, err, "get: 6")
	assert.Equal(t, 9, last, "highest value")

	assert.Equal(t, 4, tree.IndexOf(7), "rank of 7")
	assert.Equal(t, -1, tree.IndexOf(6), "rank of missing value")
}

func TestSelectRankInverse(t *testing.T) {
	tree := sampleTree()
	tree.Insert(42)
	tree.Insert(-17)
	tree.Delete(8)

	for k := 0; k < tree.Count(); k += 1 {
		value, err := tree.Get(k)
		assert.NoError(t, err, "get: %d", k)
		assert.Equal(t, k, tree.IndexOf(value), "rank of value: %d", value)
	}

	for _, value := range tree.Values() {
		actual, err := tree.Get(tree.IndexOf(value))
		assert.NoError(t, err, "get rank of: %d", value)
		assert.Equal(t, value, actual, "value round trip: %d", value)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	tree := avl.New()

	_, err := tree.Get(0)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "empty tree")
	assert.True(t, fault.IsErrInvalid(err), "error class")

	tree = sampleTree()

	_, err = tree.Get(-1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "negative index")

	_, err = tree.Get(tree.Count())
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "index == count")

	// a failed query must not disturb the tree
	assert.Equal(t, 7, tree.Count(), "count after failures")
	assert.True(t, tree.CheckCounts(), "counts after failures")
}

func TestDeleteTwoChildren(t *testing.T) {
	tree := sampleTree()

	// the root holds 5 with two children, forcing successor promotion
	assert.Equal(t, 5, tree.Root().Value(), "root value")
	assert.True(t, tree.Delete(5), "delete: 5")

	assert.Equal(t, 6, tree.Count(), "count")
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, tree.Values(), "in-order values")
	assert.True(t, tree.CheckBalance(), "balance")
	assert.True(t, tree.CheckCounts(), "counts")
}

func TestDuplicateInsert(t *testing.T) {
	tree := sampleTree()
	before := tree.Serialize()

	assert.False(t, tree.Insert(5), "duplicate insert reported as added")

	assert.Equal(t, 7, tree.Count(), "count")
	assert.Equal(t, before, tree.Serialize(), "serialized form")
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Values(), "in-order values")
}

func TestDeleteMissing(t *testing.T) {
	tree := sampleTree()
	before := tree.Serialize()

	assert.False(t, tree.Delete(42), "missing delete reported as removed")

	assert.Equal(t, before, tree.Serialize(), "serialized form")
}
