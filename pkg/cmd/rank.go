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

	"github.com/consensys/go-tinycomp/pkg/dataset"
	"github.com/consensys/go-tinycomp/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rankCmd represents the rank command for reporting the largest (or smallest)
// columns over a set of rows.
var rankCmd = &cobra.Command{
	Use:   "rank [flags] dataset_file index",
	Short: "Rank columns by their sum over selected rows.",
	Long: `Sum the rows selected by an index (see rows) column-wise, and
	report the names of the columns with the largest sums in ascending
	order (i.e. largest last).  With --smallest, report those with the
	smallest sums instead (i.e. smallest first).`,
	Run: func(cmd *cobra.Command, args []string) {
		runWithDataset(cmd, args, 2, func(out io.Writer, ds *dataset.Dataset, cfg datasetConfig,
			args []string) error {
			rcfg := rankConfig{
				n:        GetUint(cmd, "count"),
				explicit: cmd.Flags().Changed("count"),
				smallest: GetFlag(cmd, "smallest"),
			}
			//
			return printRank(out, ds, cfg, rcfg, args[0])
		})
	},
}

// rankConfig holds the options specific to ranking.
type rankConfig struct {
	// Number of columns to report.
	n uint
	// Indicates n was given by the user.  Otherwise, n is reduced to the
	// number of columns when it exceeds this.
	explicit bool
	// Report smallest rather than largest columns.
	smallest bool
}

func printRank(out io.Writer, ds *dataset.Dataset, cfg datasetConfig, rcfg rankConfig, text string) error {
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
		n     = int(rcfg.n)
		names []string
	)
	//
	if _, cols := ds.Shape(); !rcfg.explicit && n > cols {
		n = cols
	}
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		if aggregate, err := ds.Aggregate(indices); err == nil {
			log.Debugf("aggregate over %d rows: %v", len(indices), aggregate)
		}
	}
	//
	if rcfg.smallest {
		names, err = ds.NSmallest(indices, n)
	} else {
		names, err = ds.NLargest(indices, n)
	}
	//
	if err != nil {
		return err
	}
	//
	table := termio.NewTablePrinter(2, uint(len(names)))
	//
	for i, name := range names {
		table.SetRow(uint(i), fmt.Sprintf("%d", i+1), name)
	}
	// Highlight the extreme column
	if len(names) > 0 {
		extreme := uint(len(names) - 1)
		if rcfg.smallest {
			extreme = 0
		}
		//
		table.SetEscape(1, extreme, termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
	}
	//
	table.AnsiEscapes(cfg.colour)

	return table.Print(out)
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().UintP("count", "n", dataset.DefaultRankCount, "number of columns to report")
	rankCmd.Flags().Bool("smallest", false, "report the smallest rather than the largest columns")
}
