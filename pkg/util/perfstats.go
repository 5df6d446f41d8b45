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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of time and memory allocation at a given point,
// used to report what an operation (e.g. indexing a file) cost.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
	// Indicates memory statistics were read
	sampled bool
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
// Reading memory statistics stops the world, hence only the time is recorded
// unless debug logging is enabled.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	sampled := log.IsLevelEnabled(log.DebugLevel)
	if sampled {
		runtime.ReadMemStats(&m)
	}

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC, sampled}
}

// Elapsed returns the time passed since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log logs (at debug level) the difference between the state now and as it was
// when the PerfStats object was created.  Allocation is reported in Kb.
func (p *PerfStats) Log(prefix string) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	fields := log.Fields{"elapsed": p.Elapsed().Round(time.Microsecond)}
	// Without a starting snapshot there is nothing to compare against.
	if p.sampled {
		var m runtime.MemStats

		runtime.ReadMemStats(&m)
		fields["allocKb"] = (m.TotalAlloc - p.startMem) / 1024
		fields["gcs"] = m.NumGC - p.startGc
	}
	//
	log.WithFields(fields).Debugf("%s done", prefix)
}
