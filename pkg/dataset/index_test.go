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
package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Range_01(t *testing.T) {
	require.Equal(t, []int{0, 1, 2}, NewRange(0, 3).Indices())
	require.Equal(t, []int{2, 3}, Range{2, 4, 0}.Indices())
	require.Equal(t, []int{1, 4, 7}, Range{1, 9, 3}.Indices())
	require.Equal(t, []int{5, 3, 1}, Range{5, 0, -2}.Indices())
}

func Test_Range_02(t *testing.T) {
	require.Empty(t, NewRange(3, 3).Indices())
	require.Empty(t, NewRange(4, 1).Indices())
	require.Empty(t, Range{1, 4, -1}.Indices())
}

func Test_Range_03(t *testing.T) {
	// Steps which would carry past the largest int
	require.Equal(t, []int{math.MaxInt - 1}, Range{math.MaxInt - 1, math.MaxInt, 2}.Indices())
	require.Equal(t, []int{math.MaxInt - 3, math.MaxInt - 1}, Range{math.MaxInt - 3, math.MaxInt, 2}.Indices())
	require.Equal(t, []int{0, 1 << 62}, Range{0, math.MaxInt, 1 << 62}.Indices())
	require.Equal(t, []int{math.MinInt + 1}, Range{math.MinInt + 1, math.MinInt, -2}.Indices())
	require.Equal(t, []int{math.MaxInt, -1}, Range{math.MaxInt, math.MinInt, math.MinInt}.Indices())
}

func Test_Range_04(t *testing.T) {
	checkRangeCount(t, NewRange(0, 3), 3, 2)
	checkRangeCount(t, Range{1, 9, 3}, 3, 7)
	checkRangeCount(t, Range{5, 0, -2}, 3, 1)
	checkRangeCount(t, Range{5, 0, 0}, 0, 0)
	checkRangeCount(t, Range{0, 1 << 40, 1}, 1<<40, 1<<40-1)
	checkRangeCount(t, Range{math.MinInt, math.MaxInt, 1}, math.MaxUint, math.MaxInt-1)
	checkRangeCount(t, Range{math.MaxInt - 1, math.MaxInt, 2}, 1, math.MaxInt-1)
}

func Test_Range_05(t *testing.T) {
	require.NoError(t, NewRange(0, 4).Within(4))
	require.NoError(t, Range{3, -1, -1}.Within(4))
	require.NoError(t, Range{0, 100, 3}.Within(100))
	require.NoError(t, NewRange(7, 7).Within(4))
	require.NoError(t, Range{-5, 0, -1}.Within(0))
	//
	require.ErrorIs(t, NewRange(0, 5).Within(4), ErrOutOfRange)
	require.ErrorIs(t, NewRange(-1, 2).Within(4), ErrOutOfRange)
	require.ErrorIs(t, Range{3, -2, -1}.Within(4), ErrOutOfRange)
	require.ErrorIs(t, Range{0, 1 << 40, 1}.Within(2), ErrOutOfRange)
	require.ErrorIs(t, Range{math.MaxInt - 1, math.MaxInt, 2}.Within(2), ErrOutOfRange)
	require.ErrorIs(t, Range{0, math.MaxInt, 1 << 62}.Within(2), ErrOutOfRange)
	require.ErrorIs(t, Range{1, math.MinInt, -1}.Within(2), ErrOutOfRange)
}

func Test_ParseIndex_01(t *testing.T) {
	checkParseIndex(t, "7", 7)
	checkParseIndex(t, " 0 ", 0)
	checkParseIndex(t, "-3", -3)
}

func Test_ParseIndex_02(t *testing.T) {
	checkParseIndex(t, "2:9", Range{2, 9, 1})
	checkParseIndex(t, "2:9:", Range{2, 9, 1})
	checkParseIndex(t, "9:2:-3", Range{9, 2, -3})
	checkParseIndex(t, "0 : 4 : 2", Range{0, 4, 2})
}

func Test_ParseIndex_03(t *testing.T) {
	checkParseIndex(t, "0,4,4", []int{0, 4, 4})
	checkParseIndex(t, "3, 1", []int{3, 1})
}

func Test_ParseIndex_04(t *testing.T) {
	// Slices require explicit bounds
	checkParseIndexError(t, ":5", ErrOutOfRange)
	checkParseIndexError(t, "2:", ErrOutOfRange)
	checkParseIndexError(t, "::2", ErrOutOfRange)
	checkParseIndexError(t, "1:5:0", ErrOutOfRange)
}

func Test_ParseIndex_05(t *testing.T) {
	checkParseIndexError(t, "", ErrTypeMismatch)
	checkParseIndexError(t, "x", ErrTypeMismatch)
	checkParseIndexError(t, "1.5", ErrTypeMismatch)
	checkParseIndexError(t, "1,,2", ErrTypeMismatch)
	checkParseIndexError(t, "1:2:3:4", ErrTypeMismatch)
	checkParseIndexError(t, "a:2", ErrTypeMismatch)
}

func Test_ParseIndex_06(t *testing.T) {
	ds := openDataset(t, countingFile(6))
	// Parsed indices select as expected
	for _, text := range []string{"4", "1:6:2", "5,0,5"} {
		index, err := ParseIndex(text)
		require.NoError(t, err)
		//
		_, err = ds.Select(index)
		require.NoError(t, err)
	}
}

func checkParseIndex(t *testing.T, text string, expected any) {
	t.Helper()
	//
	actual, err := ParseIndex(text)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func checkParseIndexError(t *testing.T, text string, expected error) {
	t.Helper()
	//
	_, err := ParseIndex(text)
	require.ErrorIs(t, err, expected)
}

func checkRangeCount(t *testing.T, r Range, count uint, last int) {
	t.Helper()
	//
	require.Equal(t, count, r.Count())
	//
	l, ok := r.Last()
	require.Equal(t, count > 0, ok)
	//
	if ok {
		require.Equal(t, last, l)
	}
}
