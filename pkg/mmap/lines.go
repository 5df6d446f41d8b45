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
	"bufio"
	"bytes"
	"errors"
	"io"

	pkgErrors "github.com/pkg/errors"
)

// ErrNoSuchLine is returned when a line beyond the end of the file is requested.
var ErrNoSuchLine = errors.New("no such line")

// scanBufferSize is the read granularity used when building a line index.
const scanBufferSize = 64 * 1024

// LineIndex provides direct access to the physical lines of a file.  It
// records the byte offset at which every line begins, such that any line can
// be read without scanning the file from the start.  A trailing newline at the
// end of the file does not start a new line.
type LineIndex struct {
	reader io.ReaderAt
	// Offset of the first byte of each line.
	offsets []int64
	// Total number of bytes covered.
	size int64
}

// NewLineIndex scans the first size bytes of a given reader, recording where
// each line starts.
func NewLineIndex(reader io.ReaderAt, size int64) (*LineIndex, error) {
	var (
		offsets []int64
		buf     = make([]byte, scanBufferSize)
		in      = bufio.NewReaderSize(io.NewSectionReader(reader, 0, size), scanBufferSize)
		pos     int64
	)
	//
	if size > 0 {
		offsets = append(offsets, 0)
	}
	//
	for {
		n, err := in.Read(buf)
		chunk := buf[:n]
		// Record the start of every line following a newline in this chunk
		for i := bytes.IndexByte(chunk, '\n'); i >= 0; {
			if start := pos + int64(i) + 1; start < size {
				offsets = append(offsets, start)
			}
			//
			next := bytes.IndexByte(chunk[i+1:], '\n')
			if next < 0 {
				break
			}
			//
			i += next + 1
		}
		//
		pos += int64(n)
		//
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pkgErrors.Wrapf(err, "failed indexing lines at offset %d", pos)
		}
	}

	return &LineIndex{reader, offsets, size}, nil
}

// Count returns the number of physical lines.
func (p *LineIndex) Count() int {
	return len(p.offsets)
}

// Span returns the byte offset and length of the nth line (counting from 0),
// excluding its line terminator.
func (p *LineIndex) Span(nth int) (int64, int64, bool) {
	if nth < 0 || nth >= len(p.offsets) {
		return 0, 0, false
	}
	//
	start := p.offsets[nth]
	end := p.size
	//
	if nth+1 < len(p.offsets) {
		// Exclude the newline preceding the next line
		end = p.offsets[nth+1] - 1
	}

	return start, end - start, true
}

// Line reads the nth line (counting from 0) without its line terminator.  Both
// "\n" and "\r\n" terminators are removed.
func (p *LineIndex) Line(nth int) ([]byte, error) {
	off, length, ok := p.Span(nth)
	if !ok {
		return nil, pkgErrors.Wrapf(ErrNoSuchLine, "line %d of %d", nth, len(p.offsets))
	}
	//
	line := make([]byte, length)
	//
	if n, err := p.reader.ReadAt(line, off); err != nil && !(err == io.EOF && int64(n) == length) {
		return nil, pkgErrors.Wrapf(err, "failed reading line %d", nth)
	}
	// Strip the trailing newline of the final line, and any carriage return.
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})

	return line, nil
}
