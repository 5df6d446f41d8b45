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
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestPerfStatsLog(t *testing.T) {
	hook := test.NewGlobal()
	level := log.GetLevel()
	//
	defer log.SetLevel(level)
	// Nothing is logged below debug level
	log.SetLevel(log.InfoLevel)
	NewPerfStats().Log("Indexing")
	require.Empty(t, hook.AllEntries())
	//
	log.SetLevel(log.DebugLevel)
	NewPerfStats().Log("Indexing")
	//
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "Indexing done", entry.Message)
	require.Contains(t, entry.Data, "elapsed")
	require.Contains(t, entry.Data, "allocKb")
}

func TestPerfStatsSnapshot(t *testing.T) {
	hook := test.NewGlobal()
	level := log.GetLevel()
	//
	defer log.SetLevel(level)
	// Memory is not sampled below debug level
	log.SetLevel(log.InfoLevel)
	stats := NewPerfStats()
	require.False(t, stats.sampled)
	require.Zero(t, stats.startMem)
	require.Zero(t, stats.startGc)
	// Hence, only time is reported if debug is enabled afterwards
	log.SetLevel(log.DebugLevel)
	stats.Log("Validating")
	//
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "Validating done", entry.Message)
	require.Contains(t, entry.Data, "elapsed")
	require.NotContains(t, entry.Data, "allocKb")
	require.NotContains(t, entry.Data, "gcs")
	//
	require.True(t, NewPerfStats().sampled)
}
