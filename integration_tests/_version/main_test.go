// Copyright 2025 G-Core Innovations SARL

package main

import (
	"runtime/debug"
	"testing"
)

func TestGoVersion(t *testing.T) {
	bi, _ := debug.ReadBuildInfo()
	t.Log(bi.GoVersion)
}
