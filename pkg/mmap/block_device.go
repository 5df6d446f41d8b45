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
	"runtime/debug"
	"syscall"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// BlockDevice is a read-only view of a file through a memory map.  An empty
// file has no mapping at all, in which case every read reports io.EOF.
type BlockDevice struct {
	data []byte
}

// NewBlockDevice maps the first sizeBytes bytes of the file referred to by the
// given descriptor.  The descriptor can be closed once this returns, since the
// mapping holds its own reference to the file.
func NewBlockDevice(fileDescriptor, sizeBytes int) (*BlockDevice, error) {
	if sizeBytes == 0 {
		// mmap() rejects zero-length mappings.
		return &BlockDevice{}, nil
	}
	//
	data, err := unix.Mmap(fileDescriptor, 0, sizeBytes, syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "failed to memory map block device")
	}

	return &BlockDevice{data}, nil
}

// Size returns the number of mapped bytes.
func (bd *BlockDevice) Size() int64 {
	return int64(len(bd.data))
}

// ReadAt reads through the memory map at a given offset.
func (bd *BlockDevice) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, syscall.EINVAL
	} else if off >= int64(len(bd.data)) {
		return 0, io.EOF
	}
	// Install a page fault handler, so that I/O errors against the
	// memory map (e.g., due to the file being truncated underneath us)
	// don't cause us to crash.
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)

		if recover() != nil {
			n = 0
			err = errors.New("page fault occurred while reading from memory map")
		}
	}()

	n = copy(p, bd.data[off:])
	if n < len(p) {
		err = io.EOF
	}

	return
}

// Close releases the memory map.  Subsequent reads report io.EOF.
func (bd *BlockDevice) Close() error {
	if bd.data == nil {
		return nil
	}
	//
	data := bd.data
	bd.data = nil

	return unix.Munmap(data)
}
