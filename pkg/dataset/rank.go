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

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultRankCount is the conventional number of columns reported by
// NLargest() and NSmallest().
const DefaultRankCount = 20

// Aggregate returns the element-wise sum of the rows at the given indices,
// giving one value per column.  Indices may repeat, in which case the row is
// counted repeatedly.
func (d *Dataset) Aggregate(indices []int) ([]float64, error) {
	if d.file == nil {
		return nil, ErrClosed
	} else if len(indices) == 0 {
		return nil, errors.Wrap(ErrOutOfRange, "cannot aggregate an empty set of rows")
	}
	//
	sum := make([]float64, len(d.columns))
	//
	for _, i := range indices {
		row, err := d.Row(i)
		if err != nil {
			return nil, err
		}
		//
		floats.Add(sum, row)
	}

	return sum, nil
}

// NLargest returns the names of the n columns whose aggregate (see Aggregate)
// over the given rows is largest.  Names are ordered by ascending value, hence
// the largest comes last.  A column whose aggregate is NaN is only reported
// when fewer than n columns have a numeric aggregate.
func (d *Dataset) NLargest(indices []int, n int) ([]string, error) {
	order, err := d.rank(indices, n, true)
	if err != nil {
		return nil, err
	}

	return d.columnNames(order[len(order)-n:]), nil
}

// NSmallest returns the names of the n columns whose aggregate (see Aggregate)
// over the given rows is smallest.  Names are ordered by ascending value, hence
// the smallest comes first.  As for NLargest, columns whose aggregate is NaN
// come after every other column.
func (d *Dataset) NSmallest(indices []int, n int) ([]string, error) {
	order, err := d.rank(indices, n, false)
	if err != nil {
		return nil, err
	}

	return d.columnNames(order[:n]), nil
}

// Order all columns by ascending aggregate value.  Columns with equal values
// retain their relative order.  NaN aggregates have no place in this order, so
// those columns are put either before (nanFirst) or after all others.
func (d *Dataset) rank(indices []int, n int, nanFirst bool) ([]int, error) {
	if n < 0 || n > len(d.columns) {
		return nil, errors.Wrapf(ErrOutOfRange, "cannot rank %d of %d columns", n, len(d.columns))
	}
	//
	aggregate, err := d.Aggregate(indices)
	if err != nil {
		return nil, err
	}
	//
	var (
		values  []float64
		columns []int
		nans    []int
	)
	//
	for col, val := range aggregate {
		if math.IsNaN(val) {
			nans = append(nans, col)
		} else {
			values = append(values, val)
			columns = append(columns, col)
		}
	}
	//
	order := make([]int, len(values))
	// NOTE: this sorts values as well.
	floats.ArgsortStable(values, order)
	//
	for i, j := range order {
		order[i] = columns[j]
	}
	//
	if nanFirst {
		return append(nans, order...), nil
	}

	return append(order, nans...), nil
}

func (d *Dataset) columnNames(columns []int) []string {
	names := make([]string, len(columns))
	//
	for i, col := range columns {
		names[i] = d.columns[col]
	}

	return names
}
