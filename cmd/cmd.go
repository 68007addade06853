package cmd

import (
	"github.com/dcastro/dequenet/std/utils"
	"github.com/dcastro/dequenet/tools"
	"github.com/spf13/cobra"
)

const banner = `
     _                                   _
  __| | ___  __ _ _   _  ___ _ __   ___| |_
 / _  |/ _ \/ _  | | | |/ _ \ '_ \ / _ \ __|
| (_| |  __/ (_| | |_| |  __/ | | |  __/ |_
 \__,_|\___|\__, |\__,_|\___|_| |_|\___|\__|
               |_|

Lock-free concurrent deque
`

var CmdDequeNet = &cobra.Command{
	Use:     "dequenet",
	Short:   "Lock-free concurrent deque",
	Long:    banner[1:],
	Version: utils.Version,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdDequeNet.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdDequeNet.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdDequeNet.PersistentFlags().Lookup("help").Hidden = true

	CmdDequeNet.AddGroup(&cobra.Group{ID: "tools", Title: "Debug Tools"})
	CmdDequeNet.AddCommand(tools.CmdPerf())
}
