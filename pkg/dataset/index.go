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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Range selects the rows Start, Start+Step, Start+2*Step, ... up to but
// excluding Stop.  A negative Step walks downwards, in which case Start should
// exceed Stop.  A Step of zero is treated as one.
type Range struct {
	Start int
	Stop  int
	Step  int
}

// NewRange constructs a range with unit step.
func NewRange(start, stop int) Range {
	return Range{start, stop, 1}
}

// Count returns the number of indices selected by this range.  This is
// computed without enumerating them, and holds even when a step would
// overflow int.
func (r Range) Count() uint {
	var span, stride uint
	//
	if step := r.step(); step > 0 {
		if r.Start >= r.Stop {
			return 0
		}
		//
		span, stride = uint(r.Stop)-uint(r.Start), uint(step)
	} else {
		if r.Start <= r.Stop {
			return 0
		}
		// NOTE: -step wraps for math.MinInt, but its unsigned value is still
		// the magnitude.
		span, stride = uint(r.Start)-uint(r.Stop), uint(-step)
	}

	return (span-1)/stride + 1
}

// Last returns the final index selected by this range, or false if the range
// is empty.
func (r Range) Last() (int, bool) {
	n := r.Count()
	if n == 0 {
		return 0, false
	}

	return r.nth(n - 1), true
}

// Within checks that every index selected by this range is a valid row of a
// dataset with n rows.  An empty range is always within bounds.
func (r Range) Within(n int) error {
	last, ok := r.Last()
	if !ok {
		return nil
	} else if r.Start < 0 || r.Start >= n || last < 0 || last >= n {
		return errors.Wrapf(ErrOutOfRange, "rows %s (dataset has %d rows)", r, n)
	}
	// Indices are monotonic, so everything between is also in bounds.
	return nil
}

// Indices returns the row indices selected by this range, in order.  This
// allocates Count() ints, hence a range should be checked with Within() before
// being expanded.
func (r Range) Indices() []int {
	indices := make([]int, r.Count())
	//
	for k := range indices {
		indices[k] = r.nth(uint(k))
	}

	return indices
}

func (r Range) step() int {
	if r.Step == 0 {
		return 1
	}

	return r.Step
}

// The kth index, for k < Count().  Unsigned arithmetic wraps, but the result
// lies between Start and Stop and so converts back exactly.
func (r Range) nth(k uint) int {
	return int(uint(r.Start) + k*uint(r.step()))
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d:%d", r.Start, r.Stop, r.Step)
}

// ParseIndex parses the textual form of an index, as accepted by Select():
//
//	7        a single row (int)
//	2:9      rows 2 through 8 (Range)
//	9:2:-3   rows 9, 6 and 3 (Range)
//	0,4,4    rows 0, 4 and 4 again ([]int)
//
// Slices must give both their start and their stop; an omitted bound fails
// with ErrOutOfRange, as does a zero step.  Malformed numbers fail with
// ErrTypeMismatch.
func ParseIndex(text string) (any, error) {
	text = strings.TrimSpace(text)
	//
	switch {
	case strings.Contains(text, ":"):
		return parseRange(text)
	case strings.Contains(text, ","):
		return parseList(text)
	default:
		return parseInt(text)
	}
}

func parseRange(text string) (Range, error) {
	parts := strings.Split(text, ":")
	//
	if len(parts) > 3 {
		return Range{}, errors.Wrapf(ErrTypeMismatch, "malformed slice %q", text)
	} else if strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return Range{}, errors.Wrapf(ErrOutOfRange, "slice %q requires explicit start and stop", text)
	}
	//
	var (
		bounds = [3]int{0, 0, 1}
		err    error
	)
	//
	for i, part := range parts {
		// An empty step means the default.
		if i == 2 && strings.TrimSpace(part) == "" {
			break
		}
		//
		if bounds[i], err = parseInt(part); err != nil {
			return Range{}, err
		}
	}
	//
	if bounds[2] == 0 {
		return Range{}, errors.Wrapf(ErrOutOfRange, "slice %q has zero step", text)
	}

	return Range{bounds[0], bounds[1], bounds[2]}, nil
}

func parseList(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	indices := make([]int, len(parts))
	//
	for i, part := range parts {
		var err error
		if indices[i], err = parseInt(part); err != nil {
			return nil, err
		}
	}

	return indices, nil
}

func parseInt(text string) (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Wrapf(ErrTypeMismatch, "index %q is not an integer", text)
	}

	return val, nil
}
