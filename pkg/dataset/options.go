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

import "unicode/utf8"

// Option configures how a dataset is opened.
type Option func(*options)

type options struct {
	comma  rune
	strict bool
}

func defaultOptions() *options {
	return &options{
		comma:  ',',
		strict: false,
	}
}

// WithComma sets the field delimiter (default ',').  Delimiters which
// encoding/csv cannot use (e.g. '"', '\n' or an invalid rune) are ignored.
func WithComma(r rune) Option {
	return func(o *options) {
		if validDelimiter(r) {
			o.comma = r
		}
	}
}

// WithStrict makes Open() parse every data row up front, such that a file
// containing non-numeric fields or ragged rows is rejected at construction
// rather than on first access.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Check whether encoding/csv accepts a given rune as a field delimiter.
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
