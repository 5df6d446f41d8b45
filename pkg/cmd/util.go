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
package cmd

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/consensys/go-tinycomp/pkg/dataset"
	"github.com/consensys/go-tinycomp/pkg/util/termio"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// datasetConfig captures the flags which determine how a dataset is opened and
// how results are shown.
type datasetConfig struct {
	// Field delimiter
	delimiter rune
	// Reject non-numeric rows up front
	strict bool
	// Use ANSI escapes when printing tables
	colour bool
}

func getDatasetConfig(cmd *cobra.Command) datasetConfig {
	text := GetString(cmd, "delimiter")
	delimiter, size := utf8.DecodeRuneInString(text)
	//
	if size == 0 || size != len(text) {
		fmt.Println("delimiter must be a single character")
		os.Exit(2)
	}
	//
	return datasetConfig{
		delimiter: delimiter,
		strict:    GetFlag(cmd, "strict"),
		colour:    !GetFlag(cmd, "no-color") && termio.IsTerminal(cmd.OutOrStdout()),
	}
}

func (c datasetConfig) options() []dataset.Option {
	opts := []dataset.Option{dataset.WithComma(c.delimiter)}
	//
	if c.strict {
		opts = append(opts, dataset.WithStrict())
	}

	return opts
}

// Run a command against the dataset given as the first argument, reporting any
// error and exiting.
func runWithDataset(cmd *cobra.Command, args []string, nargs int,
	fn func(io.Writer, *dataset.Dataset, datasetConfig, []string) error) {
	//
	if len(args) != nargs {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	//
	cfg := getDatasetConfig(cmd)
	//
	ds, err := dataset.Open(args[0], cfg.options()...)
	if err == nil {
		err = fn(cmd.OutOrStdout(), ds, cfg, args[1:])
		ds.Close()
	}
	// Handle error
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// Determine the rows identified by an index returned from dataset.ParseIndex.
// Slices are bounds checked against the dataset before being expanded.
func indicesOf(ds *dataset.Dataset, index any) ([]int, error) {
	switch idx := index.(type) {
	case int:
		return []int{idx}, nil
	case dataset.Range:
		if err := idx.Within(ds.Len()); err != nil {
			return nil, err
		}
		//
		return idx.Indices(), nil
	case []int:
		return idx, nil
	default:
		panic(fmt.Sprintf("unknown index %T", index))
	}
}
