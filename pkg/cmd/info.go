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
	"strconv"

	"github.com/consensys/go-tinycomp/pkg/dataset"
	"github.com/consensys/go-tinycomp/pkg/util/termio"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command for summarising a dataset.
var infoCmd = &cobra.Command{
	Use:   "info [flags] dataset_file",
	Short: "Summarise a dataset.",
	Long:  `Print the shape of a dataset, along with the names of its columns.`,
	Run: func(cmd *cobra.Command, args []string) {
		runWithDataset(cmd, args, 1, printInfo)
	},
}

func printInfo(out io.Writer, ds *dataset.Dataset, cfg datasetConfig, _ []string) error {
	var (
		rows, cols = ds.Shape()
		columns    = ds.Columns()
		table      = termio.NewTablePrinter(2, uint(cols)+1)
	)
	//
	if _, err := fmt.Fprintf(out, "%s: %d rows x %d columns\n", ds.Path(), rows, cols); err != nil {
		return err
	}
	//
	table.SetRow(0, "#", "column")
	table.SetRowEscape(0, termio.BoldAnsiEscape())
	//
	for i, name := range columns {
		table.SetRow(uint(i)+1, strconv.Itoa(i), name)
	}
	//
	table.AnsiEscapes(cfg.colour)

	return table.Print(out)
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
