// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Cover runs all tests with coverage reporting.
func (Test) Cover() error {
	return sh.RunV(binGo, "test", "-cover", "./...")
}

// Bench runs the rotation core benchmarks.
func (Test) Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "./pkg/rotate/...")
}
