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
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Slice returns the rows selected by a given range, one matrix row per data
// row.  Every selected index must be a valid row, which is checked before any
// row is read.  An empty range gives an empty matrix.
func (d *Dataset) Slice(r Range) (*mat.Dense, error) {
	if d.file == nil {
		return nil, ErrClosed
	} else if err := r.Within(d.Len()); err != nil {
		return nil, err
	}

	return d.RowsOf(r.Indices())
}

// RowsOf returns the rows at the given indices, in the order given.  Indices
// may repeat, in which case so do the rows.  No indices gives an empty matrix.
func (d *Dataset) RowsOf(indices []int) (*mat.Dense, error) {
	if d.file == nil {
		return nil, ErrClosed
	} else if len(indices) == 0 {
		// gonum does not permit matrices with zero rows.
		return &mat.Dense{}, nil
	}
	//
	var (
		width = len(d.columns)
		data  = make([]float64, 0, len(indices)*width)
	)
	//
	for _, i := range indices {
		row, err := d.Row(i)
		if err != nil {
			return nil, err
		}
		//
		data = append(data, row...)
	}

	return mat.NewDense(len(indices), width, data), nil
}

// Select returns the row(s) identified by a given index, which can be:
//
//	int    a single row, as a vector
//	Range  a slice of rows, as a matrix (see Slice)
//	[]int  a list of rows, as a matrix (see RowsOf)
//
// Any other kind of index fails with ErrTypeMismatch.
func (d *Dataset) Select(index any) (mat.Matrix, error) {
	switch idx := index.(type) {
	case int:
		row, err := d.Row(idx)
		if err != nil {
			return nil, err
		}
		//
		return mat.NewVecDense(len(row), row), nil
	case Range:
		return d.Slice(idx)
	case []int:
		return d.RowsOf(idx)
	default:
		return nil, errors.Wrapf(ErrTypeMismatch, "index must be int, Range or []int, not %T", index)
	}
}
