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
	"io"
	"strconv"

	"github.com/consensys/go-tinycomp/pkg/dataset"
	"github.com/consensys/go-tinycomp/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// rowsCmd represents the rows command for printing selected rows.
var rowsCmd = &cobra.Command{
	Use:   "rows [flags] dataset_file index",
	Short: "Print selected rows of a dataset.",
	Long: `Print rows of a dataset selected by an index, which is either
	a row number (e.g. 7), a slice with explicit start and stop and an
	optional step (e.g. 2:9 or 9:2:-3), or a comma-separated list of row
	numbers (e.g. 0,4,4).`,
	Run: func(cmd *cobra.Command, args []string) {
		runWithDataset(cmd, args, 2, func(out io.Writer, ds *dataset.Dataset, cfg datasetConfig,
			args []string) error {
			return printRows(out, ds, cfg, rowsConfig{GetFlag(cmd, "raw"), GetUint(cmd, "textwidth")}, args[0])
		})
	},
}

// rowsConfig holds the options specific to printing rows.
type rowsConfig struct {
	// Print fields as given, rather than parsed
	raw bool
	// Maximum width of any printed column
	textwidth uint
}

func printRows(out io.Writer, ds *dataset.Dataset, cfg datasetConfig, rcfg rowsConfig, text string) error {
	index, err := dataset.ParseIndex(text)
	if err != nil {
		return err
	}
	//
	indices, err := indicesOf(ds, index)
	if err != nil {
		return err
	}
	//
	var (
		columns = ds.Columns()
		table   = termio.NewTablePrinter(uint(len(columns))+1, uint(len(indices))+1)
		records [][]string
	)
	//
	log.Debugf("selecting %v (%d rows) of %s", index, len(indices), ds.Path())
	//
	if rcfg.raw {
		records, err = selectRecords(ds, indices)
	} else {
		records, err = selectRows(ds, index)
	}
	//
	if err != nil {
		return err
	}
	// Header
	table.SetRow(0, append([]string{"row"}, columns...)...)
	table.SetRowEscape(0, termio.BoldAnsiEscape())
	//
	for i, record := range records {
		table.SetRow(uint(i)+1, append([]string{strconv.Itoa(indices[i])}, record...)...)
	}
	//
	if rcfg.textwidth > 0 {
		table.SetMaxWidths(rcfg.textwidth)
	}
	//
	table.AnsiEscapes(cfg.colour)

	return table.Print(out)
}

// Select the unparsed fields of the given rows.  Rows whose field count
// differs from the header are padded (or cut) to fit the table.
func selectRecords(ds *dataset.Dataset, indices []int) ([][]string, error) {
	var (
		_, width = ds.Shape()
		records  = make([][]string, len(indices))
	)
	//
	for i, idx := range indices {
		record, err := ds.Record(idx)
		if err != nil {
			return nil, err
		}
		//
		records[i] = make([]string, width)
		copy(records[i], record)
	}

	return records, nil
}

// Select the given rows, and format their values.
func selectRows(ds *dataset.Dataset, index any) ([][]string, error) {
	selected, err := ds.Select(index)
	if err != nil {
		return nil, err
	}
	//
	var rows [][]float64
	//
	switch m := selected.(type) {
	case *mat.VecDense:
		rows = append(rows, m.RawVector().Data)
	case *mat.Dense:
		if !m.IsEmpty() {
			n, _ := m.Dims()
			//
			for i := 0; i < n; i++ {
				rows = append(rows, m.RawRowView(i))
			}
		}
	}
	//
	records := make([][]string, len(rows))
	//
	for i, row := range rows {
		records[i] = make([]string, len(row))
		//
		for j, val := range row {
			records[i][j] = strconv.FormatFloat(val, 'g', -1, 64)
		}
	}

	return records, nil
}

func init() {
	rootCmd.AddCommand(rowsCmd)
	rowsCmd.Flags().Bool("raw", false, "print fields as given, rather than parsed as numbers")
	rowsCmd.Flags().Uint("textwidth", 16, "maximum width of any printed column (0 for unbounded)")
}
