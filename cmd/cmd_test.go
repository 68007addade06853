package cmd

import (
	"bytes"
	"testing"

	tu "github.com/dcastro/dequenet/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestPerfRegistered(t *testing.T) {
	tu.SetT(t)

	sub, _, err := CmdDequeNet.Find([]string{"perf"})
	require.NoError(t, err)
	require.Equal(t, "perf", sub.Name())
	require.Equal(t, "tools", sub.GroupID)
	require.NotNil(t, sub.Flags().Lookup("threads"))
	require.NotNil(t, sub.Flags().Lookup("config"))
}

func TestHelp(t *testing.T) {
	tu.SetT(t)

	var out bytes.Buffer
	CmdDequeNet.SetOut(&out)
	CmdDequeNet.SetArgs([]string{"--help"})
	defer CmdDequeNet.SetArgs(nil)
	require.NoError(t, CmdDequeNet.Execute())
	require.Contains(t, out.String(), "Debug Tools")
	require.Contains(t, out.String(), "perf")
}
