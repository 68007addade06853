package toolutils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	tu "github.com/dcastro/dequenet/std/utils/testutils"
	"github.com/dcastro/dequenet/std/utils/toolutils"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Threads int    `json:"threads"`
	Mode    string `json:"mode"`
}

func TestReadYaml(t *testing.T) {
	tu.SetT(t)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.yml")
	require.NoError(t, os.WriteFile(good, []byte("threads: 8\nmode: slim\n"), 0o644))

	cfg := testConfig{Threads: 1}
	require.NoError(t, toolutils.ReadYaml(&cfg, good))
	require.Equal(t, 8, cfg.Threads)
	require.Equal(t, "slim", cfg.Mode)

	// strict: unknown keys fail
	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("threads: 8\ncolour: red\n"), 0o644))
	require.Error(t, toolutils.ReadYaml(&cfg, bad))

	require.Error(t, toolutils.ReadYaml(&cfg, filepath.Join(dir, "missing.yml")))
}

func TestStatusPrinter(t *testing.T) {
	tu.SetT(t)

	var buf bytes.Buffer
	p := toolutils.StatusPrinter{File: &buf, Padding: 8}
	p.Print("ops", 42)
	p.Print("verylongkey", true)
	require.Equal(t, "     ops=42\nverylongkey=true\n", buf.String())
}

func TestSum(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, int64(10), toolutils.Sum(slices.Values([]int{1, 2, 3, 4})))
	require.Equal(t, int64(-3), toolutils.Sum(slices.Values([]int8{-1, -2})))
	require.Equal(t, int64(0), toolutils.Sum(slices.Values([]uint{})))
	require.Equal(t, 3, toolutils.Count(slices.Values([]string{"a", "b", "c"})))
}
