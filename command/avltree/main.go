// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
//
// a filter over the serialized tree form: load a tree from a file or
// start empty, insert the argument values, apply deletions, answer
// select/rank queries, then emit the updated serialized form
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'c'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "output", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "select", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "rank", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--file=FILE] [--delete=N]… [--select=K] [--rank=N] [--check] [--list] [--tree] [--output=FILE] [value…]", program)
	}

	verbose := len(options["verbose"]) > 0

	level := "critical"
	if verbose {
		level = "info"
	}
	logging := logger.Configuration{
		Directory: ".",
		File:      "avltree.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("avltree")

	// initial tree: either from a serialized file or empty
	tree := avl.New()
	if len(options["file"]) > 0 {
		filename := options["file"][0]
		data, err := ioutil.ReadFile(filename)
		if nil != err {
			exitwithstatus.Message("%s: error reading: %q: %s", program, filename, err)
		}
		tree, err = avl.Deserialize(strings.TrimSpace(string(data)))
		if nil != err {
			exitwithstatus.Message("%s: error deserializing: %q: %s", program, filename, err)
		}
		log.Infof("loaded %d nodes from: %q", tree.Count(), filename)
	}

	// plain arguments are values to insert
	for _, arg := range arguments {
		value, err := strconv.Atoi(arg)
		if nil != err {
			exitwithstatus.Message("%s: convert value error: %s", program, err)
		}
		if tree.Insert(value) {
			log.Infof("insert: %d", value)
		} else {
			log.Infof("insert: %d ignored duplicate", value)
		}
	}

	for _, arg := range options["delete"] {
		value, err := strconv.Atoi(arg)
		if nil != err {
			exitwithstatus.Message("%s: convert delete value error: %s", program, err)
		}
		if tree.Delete(value) {
			log.Infof("delete: %d", value)
		} else {
			log.Infof("delete: %d not present", value)
		}
	}

	if len(options["check"]) > 0 {
		if !tree.CheckBalance() {
			exitwithstatus.Message("%s: balance check failed", program)
		}
		if !tree.CheckCounts() {
			exitwithstatus.Message("%s: count check failed", program)
		}
		if !tree.CheckOrder() {
			exitwithstatus.Message("%s: order check failed", program)
		}
		fmt.Printf("checks passed: %d nodes\n", tree.Count())
	}

	for _, arg := range options["select"] {
		index, err := strconv.Atoi(arg)
		if nil != err {
			exitwithstatus.Message("%s: convert select index error: %s", program, err)
		}
		value, err := tree.Get(index)
		if nil != err {
			exitwithstatus.Message("%s: select: %d error: %s", program, index, err)
		}
		fmt.Printf("select: %d → %d\n", index, value)
	}

	for _, arg := range options["rank"] {
		value, err := strconv.Atoi(arg)
		if nil != err {
			exitwithstatus.Message("%s: convert rank value error: %s", program, err)
		}
		fmt.Printf("rank: %d → %d\n", value, tree.IndexOf(value))
	}

	if len(options["list"]) > 0 {
		tree.Walk(func(value int) bool {
			fmt.Printf("%d\n", value)
			return true
		})
	}

	if len(options["tree"]) > 0 {
		depth := tree.Print(os.Stdout)
		fmt.Printf("depth: %d\n", depth)
	}

	s := tree.Serialize()
	if len(options["output"]) > 0 {
		filename := options["output"][0]
		if err := ioutil.WriteFile(filename, []byte(s+"\n"), 0644); nil != err {
			exitwithstatus.Message("%s: error writing: %q: %s", program, filename, err)
		}
		log.Infof("saved %d nodes to: %q", tree.Count(), filename)
	} else {
		fmt.Printf("%s\n", s)
	}
}
