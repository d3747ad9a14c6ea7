package cpu

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()

	require.Equal(t, runtime.GOARCH, f.Architecture)
	require.GreaterOrEqual(t, f.NumCPU, 1)
	require.GreaterOrEqual(t, f.MaxProcs, 1)

	if runtime.GOARCH == "amd64" {
		require.True(t, f.HasSSE2, "amd64 without SSE2")
	}

	require.True(t, strings.HasPrefix(f.String(), runtime.GOARCH+" "), "String() = %q", f.String())
}

func TestDefaultWorkers(t *testing.T) {
	t.Parallel()

	require.Equal(t, runtime.GOMAXPROCS(0), DefaultWorkers())
}

func TestFeaturesStringGeneric(t *testing.T) {
	t.Parallel()

	f := Features{Architecture: "wasm"}
	require.Equal(t, "wasm generic", f.String())
}
