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
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// File represents a read-only memory-mapped file.
type File struct {
	Path        string
	BlockDevice *BlockDevice
}

// Open maps an existing file for reading.  Directories are rejected, since
// they cannot be mapped.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}
	// Descriptor is only needed until the mapping exists.
	defer unix.Close(fd)
	//
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to obtain size of file %#v", path)
	} else if stat.Mode&unix.S_IFMT == unix.S_IFDIR {
		return nil, pkgErrors.Wrapf(unix.EISDIR, "failed to map file %#v", path)
	}
	//
	bd, err := NewBlockDevice(fd, int(stat.Size))
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to map file %#v", path)
	}

	return &File{path, bd}, nil
}

// Size returns the size of the mapped file in bytes.
func (f *File) Size() int64 {
	return f.BlockDevice.Size()
}

// Close unmaps the file.
func (f *File) Close() error {
	return f.BlockDevice.Close()
}
