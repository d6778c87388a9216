// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"code.hybscloud.com/closure/internal/table"
	"code.hybscloud.com/closure/weights"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var triangle = filepath.Join("..", "..", "internal", "table", "testdata", "triangle.yaml")

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-f", "t.yaml", "--storage", "jagged", "--from", "1", "--to", "2", "-m"})
	require.NoError(t, err)
	require.Equal(t, config{file: "t.yaml", storage: "jagged", from: 1, to: 2, matrix: true, logLevel: "info"}, cfg)

	_, err = parseFlags(nil)
	require.EqualError(t, err, "--file is required")

	_, err = parseFlags([]string{"--bogus"})
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("warn", &buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	_, err = newLogger("loud", &buf)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer

	err := run(config{file: triangle, storage: "sparse", from: 0, to: 2, matrix: true}, zap.New(core), &out)
	require.NoError(t, err)
	require.Equal(t, "weight 0->2: 9\n"+
		"path 0->1->2: 7\n"+
		"-\t4\t9\n"+
		"-\t-\t3\n"+
		"7\t1\t-\n", out.String())
	require.Equal(t, 1, logs.FilterMessage("loaded table").Len())
	require.Equal(t, 1, logs.FilterMessage("built provider").Len())
}

func TestRunMissingEdge(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer

	err := run(config{file: triangle, from: 1, to: 0}, zap.New(core), &out)
	require.NoError(t, err)
	require.Equal(t, "weight 1->0: none\npath 1->2->0: 10\n", out.String())
	require.Equal(t, 1, logs.FilterMessage("no direct edge").Len())
}

func TestRunSelfEdgeSameAcrossStorages(t *testing.T) {
	file := filepath.Join(t.TempDir(), "loop.yaml")
	require.NoError(t, os.WriteFile(file, []byte("nodes: 2\nedges:\n  - {from: 1, to: 1, weight: 5}\n"), 0o600))

	for _, storage := range []string{"jagged", "sparse", "dense"} {
		var out bytes.Buffer
		err := run(config{file: file, storage: storage, from: 1, to: 1, matrix: true}, zap.NewNop(), &out)
		require.NoError(t, err, storage)
		require.Equal(t, "weight 1->1: 5\npath 1: 0\n-\t-\n-\t5\n", out.String(), storage)
	}
}

func TestRunErrors(t *testing.T) {
	log := zap.NewNop()
	var out bytes.Buffer

	err := run(config{file: triangle, storage: "csr"}, log, &out)
	require.ErrorIs(t, err, weights.ErrUnknownKind)

	err = run(config{file: triangle, storage: "uniform"}, log, &out)
	require.ErrorIs(t, err, weights.ErrNotUniform)

	err = run(config{file: filepath.Join("testdata", "none.yaml")}, log, &out)
	require.Error(t, err)
	require.NotErrorIs(t, err, table.ErrInvalidTable)
}
