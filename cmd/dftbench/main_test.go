package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	algodft "github.com/cwbudde/algo-dft"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestParseStrategies(t *testing.T) {
	t.Parallel()

	got, err := parseStrategies("naive, parallel-transpose,,")
	require.NoError(t, err)
	require.Equal(t, []algodft.Strategy{algodft.StrategyNaive, algodft.StrategyParallelTranspose}, got)

	_, err = parseStrategies(" , ")
	require.ErrorIs(t, err, algodft.ErrUnknownStrategy)

	_, err = parseStrategies("radix4")
	require.ErrorIs(t, err, algodft.ErrUnknownStrategy)
}

func TestVerifyCommand(t *testing.T) {
	t.Parallel()

	for _, name := range algodft.FieldNames() {
		out, err := execute(t, "verify", "--field", name, "--max-log-height", "4", "--width", "3", "--workers", "2")
		require.NoError(t, err, name)
		require.NotContains(t, out, "MISMATCH")
		require.Equal(t, 5*len(algodft.Strategies()), strings.Count(out, " ok\n"))
	}

	_, err := execute(t, "verify", "--field", "bn254", "--max-log-height", "40")
	require.ErrorIs(t, err, algodft.ErrTwoAdicity)
}

func TestBenchCommandWritesChart(t *testing.T) {
	t.Parallel()

	chart := filepath.Join(t.TempDir(), "bench.html")

	out, err := execute(t, "bench", "--log-height", "4", "--width", "4", "--iters", "3", "--warmup", "1",
		"--strategies", "naive,radix2-dit,parallel-transpose", "--chart", chart, "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, out, "parallel-transpose")
	require.Contains(t, out, "median ns/op")

	html, err := os.ReadFile(chart)
	require.NoError(t, err)
	require.Contains(t, string(html), "DFTBatch goldilocks 16x4")
}

func TestBenchCommandRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "bench", "--field", "mersenne31")
	require.ErrorIs(t, err, algodft.ErrUnknownField)

	_, err = execute(t, "bench", "--log-height", "-1", "--iters", "1")
	require.ErrorIs(t, err, algodft.ErrTwoAdicity)

	_, err = execute(t, "bench", "--field", "babybear", "--log-height", "28", "--iters", "1")
	require.ErrorIs(t, err, algodft.ErrTwoAdicity)

	_, err = execute(t, "bench", "--strategies", "stockham")
	require.ErrorIs(t, err, algodft.ErrUnknownStrategy)

	_, err = execute(t, "bench", "--log-height", "4", "--iters", "0")
	require.Error(t, err)

	_, err = execute(t, "bench", "--log-level", "loud")
	require.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "info")
	require.NoError(t, err)

	for _, name := range algodft.FieldNames() {
		require.Contains(t, out, name)
	}

	require.Contains(t, out, "workers:")
}
