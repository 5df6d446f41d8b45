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
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/consensys/go-tinycomp/pkg/mmap"
	"github.com/consensys/go-tinycomp/pkg/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dataset provides lazy, row-oriented access to a CSV file.  The first line of
// the file is a header naming the columns, and every following line holds one
// record of numeric fields.  Rows are located through a line index built when
// the dataset is opened, and are only read when requested.  Thus, the file is
// never loaded into memory as a whole.
//
// The dataset does not track changes to its file.  The file must not be
// modified whilst a dataset is open on it.
type Dataset struct {
	path string
	// Mapped file (nil once closed)
	file *mmap.File
	// Offsets of physical lines, including the header.
	lines   *mmap.LineIndex
	columns []string
	comma   rune
}

// Open a dataset on the CSV file at the given path.  This reads through the
// file once to index its lines, and then parses the header.
func Open(path string, opts ...Option) (*Dataset, error) {
	var (
		o     = defaultOptions()
		stats = util.NewPerfStats()
	)
	//
	for _, opt := range opts {
		opt(o)
	}
	//
	file, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "%v", err)
	}
	//
	lines, err := mmap.NewLineIndex(file.BlockDevice, file.Size())
	if err != nil {
		file.Close()
		return nil, errors.Wrapf(ErrNotFound, "%v", err)
	}
	//
	ds := &Dataset{path: path, file: file, lines: lines, comma: o.comma}
	// Parse the header
	if ds.columns, err = ds.readHeader(); err != nil {
		file.Close()
		return nil, err
	}
	//
	stats.Log(fmt.Sprintf("Indexing %d lines of %s", lines.Count(), path))
	//
	if o.strict {
		if err := ds.validate(); err != nil {
			file.Close()
			return nil, err
		}
	}
	//
	log.Debugf("opened %s with shape (%d, %d)", path, ds.Len(), len(ds.columns))

	return ds, nil
}

// Path returns the path of the file backing this dataset.
func (d *Dataset) Path() string {
	return d.path
}

// Columns returns the column names, as given by the header.
func (d *Dataset) Columns() []string {
	columns := make([]string, len(d.columns))
	copy(columns, d.columns)

	return columns
}

// Len returns the number of data rows (i.e. excluding the header), as counted
// when the dataset was opened.
func (d *Dataset) Len() int {
	return d.lines.Count() - 1
}

// Shape returns the number of rows and columns of this dataset.
func (d *Dataset) Shape() (int, int) {
	return d.Len(), len(d.columns)
}

// Close releases the file backing this dataset.  Any subsequent query fails
// with ErrClosed.  Closing an already closed dataset has no effect.
func (d *Dataset) Close() error {
	if d.file == nil {
		return nil
	}
	//
	file := d.file
	d.file = nil

	return file.Close()
}

// Record returns the unparsed fields of the ith data row.
func (d *Dataset) Record(i int) ([]string, error) {
	if d.file == nil {
		return nil, ErrClosed
	} else if i < 0 || i >= d.Len() {
		return nil, errors.Wrapf(ErrOutOfRange, "row %d (dataset has %d rows)", i, d.Len())
	}
	// Line 0 is the header
	return d.readRecord(i + 1)
}

// Row returns the ith data row, with every field parsed as a float64.  This
// fails if any field is not numeric, or if the row does not have exactly one
// field per column.
func (d *Dataset) Row(i int) ([]float64, error) {
	record, err := d.Record(i)
	if err != nil {
		return nil, err
	}

	return d.parseRecord(i, record)
}

func (d *Dataset) readHeader() ([]string, error) {
	if d.lines.Count() == 0 {
		return nil, errors.Wrapf(ErrParseFailure, "%s: missing header", d.path)
	}
	//
	header, err := d.readRecord(0)
	if errors.Is(err, ErrParseFailure) {
		return nil, err
	} else if err != nil {
		// Unreadable at construction
		return nil, errors.Wrapf(ErrNotFound, "%v", err)
	} else if len(header) == 0 {
		return nil, errors.Wrapf(ErrParseFailure, "%s: empty header", d.path)
	}

	return header, nil
}

// Read a physical line and tokenize it as exactly one CSV record.  A blank
// line gives an empty record.  Failing to read the line at all (e.g. because
// the file was truncated after opening) is reported as the underlying I/O
// error.
func (d *Dataset) readRecord(nth int) ([]string, error) {
	line, err := d.lines.Line(nth)
	if err != nil {
		return nil, errors.Wrapf(err, "%s line %d", d.path, nth+1)
	}
	//
	reader := csv.NewReader(bytes.NewReader(line))
	reader.Comma = d.comma
	// Field counts are checked against the header when parsing.
	reader.FieldsPerRecord = -1
	//
	record, err := reader.Read()
	if err == io.EOF {
		return []string{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(ErrParseFailure, "%s line %d: %v", d.path, nth+1, err)
	}

	return record, nil
}

func (d *Dataset) parseRecord(row int, record []string) ([]float64, error) {
	if len(record) != len(d.columns) {
		return nil, errors.Wrapf(ErrParseFailure, "row %d has %d fields, expected %d", row, len(record),
			len(d.columns))
	}
	//
	values := make([]float64, len(record))
	//
	for i, field := range record {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrParseFailure, "row %d, column %q: %q is not numeric", row,
				d.columns[i], field)
		}
		//
		values[i] = val
	}

	return values, nil
}

// Check every row parses.
func (d *Dataset) validate() error {
	stats := util.NewPerfStats()
	//
	for i := 0; i < d.Len(); i++ {
		if _, err := d.Row(i); err != nil {
			return err
		}
	}
	//
	stats.Log(fmt.Sprintf("Validating %d rows of %s", d.Len(), d.path))

	return nil
}
