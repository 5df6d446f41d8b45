// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mmap

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Hello, world"), 0644))

	file, err := Open(path)
	require.NoError(t, err)

	defer file.Close()

	require.Equal(t, int64(12), file.Size())

	var b [5]byte
	n, err := file.BlockDevice.ReadAt(b[:], 7)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("world"), b[:])
	// Reading past the end is a short read.
	n, err = file.BlockDevice.ReadAt(b[:], 10)
	require.Equal(t, 2, n)
	require.ErrorIs(t, err, io.EOF)
	// Unmapped devices behave as empty.
	require.NoError(t, file.Close())
	_, err = file.BlockDevice.ReadAt(b[:], 0)
	require.ErrorIs(t, err, io.EOF)
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	file, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, int64(0), file.Size())
	require.NoError(t, file.Close())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	_, err = Open(t.TempDir())
	require.Error(t, err)
}

func Test_LineIndex_01(t *testing.T) {
	checkLineIndex(t, "")
}

func Test_LineIndex_02(t *testing.T) {
	checkLineIndex(t, "a,b,c")
}

func Test_LineIndex_03(t *testing.T) {
	checkLineIndex(t, "a,b,c\n", "a,b,c")
}

func Test_LineIndex_04(t *testing.T) {
	checkLineIndex(t, "a,b,c\n1,2,3\n4,5,6\n", "a,b,c", "1,2,3", "4,5,6")
}

func Test_LineIndex_05(t *testing.T) {
	checkLineIndex(t, "a,b,c\n1,2,3\n4,5,6", "a,b,c", "1,2,3", "4,5,6")
}

func Test_LineIndex_06(t *testing.T) {
	checkLineIndex(t, "a,b\r\n1,2\r\n", "a,b", "1,2")
}

func Test_LineIndex_07(t *testing.T) {
	checkLineIndex(t, "a\n\nb\n", "a", "", "b")
}

func Test_LineIndex_08(t *testing.T) {
	checkLineIndex(t, "\n", "")
}

func Test_LineIndex_09(t *testing.T) {
	// Lines spanning several scan buffers
	var (
		long  = strings.Repeat("x", scanBufferSize+17)
		lines = []string{long, "1", long, long, "2"}
	)
	//
	checkLineIndex(t, strings.Join(lines, "\n")+"\n", lines...)
}

func Test_LineIndex_10(t *testing.T) {
	var lines []string
	//
	for i := 0; i < 10000; i++ {
		lines = append(lines, strings.Repeat("7", i%13))
	}
	//
	checkLineIndex(t, strings.Join(lines, "\n"), lines...)
}

func checkLineIndex(t *testing.T, contents string, expected ...string) {
	t.Parallel()
	//
	path := filepath.Join(t.TempDir(), "lines.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	//
	file, err := Open(path)
	require.NoError(t, err)
	//
	defer file.Close()
	//
	index, err := NewLineIndex(file.BlockDevice, file.Size())
	require.NoError(t, err)
	require.Equal(t, len(expected), index.Count())
	// Check lines in reverse to make sure nothing depends on sequential access.
	for i := len(expected) - 1; i >= 0; i-- {
		line, err := index.Line(i)
		require.NoError(t, err)
		require.Equal(t, expected[i], string(line))
	}
	//
	_, err = index.Line(len(expected))
	require.True(t, errors.Is(err, ErrNoSuchLine))
	_, err = index.Line(-1)
	require.True(t, errors.Is(err, ErrNoSuchLine))
}
