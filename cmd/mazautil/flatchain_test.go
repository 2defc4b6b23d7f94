// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempChainFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "chain.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFlatChainParsesLines(t *testing.T) {
	zero := "0000000000000000000000000000000000000000000000000000000000000000"
	one := "0000000000000000000000000000000000000000000000000000000000000001"
	contents := "# comment\n" +
		"0 " + zero + " " + zero + " 1e0ffff0 1600000000 2091390249 1\n" +
		"1 " + one + " " + zero + " 1e0ffff0 1600000120 42 1\n"

	path := writeTempChainFile(t, contents)
	chain, err := loadFlatChain(path, 192)
	require.NoError(t, err)

	tip := chain.Tip()
	require.NotNil(t, tip)
	require.Equal(t, int32(1), tip.Height())

	parent := chain.Prev(tip)
	require.NotNil(t, parent)
	require.Equal(t, int32(0), parent.Height())
	require.Nil(t, chain.Prev(parent))
}

func TestLoadFlatChainRejectsMalformedLine(t *testing.T) {
	path := writeTempChainFile(t, "not enough fields\n")
	_, err := loadFlatChain(path, 192)
	require.Error(t, err)
}
