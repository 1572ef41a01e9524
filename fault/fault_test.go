// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrInvalidOne = fault.InvalidError("invalid one")
	ErrInvalidTwo = fault.InvalidError("invalid two")
	ErrProcessOne = fault.ProcessError("process one")
	ErrProcessTwo = fault.ProcessError("process two")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err     error
		invalid bool
		process bool
	}{
		{ErrInvalidOne, true, false},
		{ErrInvalidTwo, true, false},
		{ErrProcessOne, false, true},
		{ErrProcessTwo, false, true},
		{fault.ErrIndexOutOfRange, true, false},
		{fault.ErrMalformedSerialization, true, false},
		{fault.ErrUnexpectedEndOfData, true, false},
		{fault.ErrCorruptTree, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// instances of the same class with the same text must compare equal
func TestComparison(t *testing.T) {
	if fault.ErrIndexOutOfRange != fault.InvalidError("index is out of range") {
		t.Error("identical invalid errors do not compare equal")
	}
	if ErrInvalidOne == ErrInvalidTwo {
		t.Error("different invalid errors compare equal")
	}
}
