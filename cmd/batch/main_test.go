package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/engine"
	"github.com/lintang-b-s/binknap/pkg/frontier"
	"github.com/lintang-b-s/binknap/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResultFileFor(t *testing.T) {
	testCases := []struct {
		instance string
		outDir   string
		compress bool
		want     string
	}{
		{instance: "data/foo.txt", want: filepath.Join("data", "foo.result.txt")},
		{instance: "data/foo.txt", compress: true, want: filepath.Join("data", "foo.result.txt.bz2")},
		{instance: "data/foo", outDir: "out", want: filepath.Join("out", "foo.result.txt")},
	}

	for _, tt := range testCases {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, resultFileFor(tt.instance, tt.outDir, tt.compress))
		})
	}
}

func TestSolveAll(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("n 2\ni 3 1 0\ni 4 1 1\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("n 1\ni 3 7 0\n"), 0o644))

	instances := []string{good, bad, filepath.Join(dir, "missing.txt")}
	targets, err := resultFiles(instances, "", false)
	require.NoError(t, err)

	eng := engine.NewEngine(zap.NewNop(), pkg.CLASSIFY_STRICT, frontier.CUT_STRICT, 0)
	failed := solveAll(context.Background(), eng, instances, targets, zap.NewNop())

	assert.Equal(t, 2, failed)
	_, err = os.Stat(filepath.Join(dir, "good.result.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "bad.result.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestResultFilesRejectsSharedTarget(t *testing.T) {
	instances := []string{filepath.Join("a", "inst.txt"), filepath.Join("b", "inst.txt")}

	_, err := resultFiles(instances, "out", false)
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	targets, err := resultFiles(instances, "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("a", "inst.result.txt"), filepath.Join("b", "inst.result.txt")}, targets)

	_, err = resultFiles([]string{"inst.txt", filepath.Join(".", "inst.txt")}, "", true)
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestSolveAllWithOutDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))
	for _, sub := range []string{"a", "b"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, sub), 0o755))
	}
	first := filepath.Join(dir, "a", "first.txt")
	second := filepath.Join(dir, "b", "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("n 1\ni 3 1 0\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("n 1\ni 4 0 1\n"), 0o644))

	instances := []string{first, second}
	targets, err := resultFiles(instances, outDir, false)
	require.NoError(t, err)

	eng := engine.NewEngine(zap.NewNop(), pkg.CLASSIFY_STRICT, frontier.CUT_STRICT, 0)
	assert.Zero(t, solveAll(context.Background(), eng, instances, targets, zap.NewNop()))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
