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

import "errors"

// Errors reported by a Dataset.  Operations wrap these with context, so they
// should be matched using errors.Is().
var (
	// ErrNotFound indicates the backing file is missing or cannot be read.
	ErrNotFound = errors.New("dataset file not found")
	// ErrTypeMismatch indicates an index of an unsupported type.
	ErrTypeMismatch = errors.New("unsupported index type")
	// ErrOutOfRange indicates a row index or a count outside its bounds.
	ErrOutOfRange = errors.New("index out of range")
	// ErrParseFailure indicates a record which is not a valid numeric row.
	ErrParseFailure = errors.New("malformed record")
	// ErrClosed indicates a dataset used after Close().
	ErrClosed = errors.New("dataset is closed")
)
