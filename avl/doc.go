// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique integer values with
// the addition of cached sub-tree sizes to allow order statistics
// queries: the n'th smallest value and the rank of a value are both
// answered in O(log n).
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Duplicate values are silently ignored on insert and deleting a
// value that is not present is also ignored; neither is an error.
//
// A tree can be dumped to a compact text form and rebuilt from it,
// preserving the exact node structure.
package avl
