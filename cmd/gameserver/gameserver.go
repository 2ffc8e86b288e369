package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaonanln/gameserver/components/roles"
	"github.com/xiaonanln/gameserver/engine/consts"
	"github.com/xiaonanln/gameserver/engine/lifecycle"
	"github.com/xiaonanln/gameserver/engine/role"
)

type serverFactory func(r role.Role) *lifecycle.Server

type startArgs struct {
	configFile      string
	logLevel        string
	runInDaemonMode bool
}

func newRootCommand(stderr io.Writer, factory serverFactory, exitCode *int) *cobra.Command {
	var args startArgs
	cmd := &cobra.Command{
		Use:   "gameserver [master|world|gate|db|login|game]",
		Short: "Run one process of the game server fleet",
		Long: `gameserver runs one process of the game server fleet. The process type is
chosen by the first argument and fixed for the lifetime of the process.

` + roles.Usage(),
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true}, // ignored like extra arguments
		RunE: func(cmd *cobra.Command, positional []string) error {
			token := ""
			if len(positional) > 0 {
				token = positional[0]
			}
			*exitCode = start(token, args, stderr, factory)
			return nil
		},
	}

	cmd.Flags().StringVar(&args.configFile, "configfile", "", "set config file path (default "+consts.DEFAULT_CONFIG_FILE+" if present)")
	cmd.Flags().StringVar(&args.logLevel, "log", "", "set log level, will override log level in config")
	cmd.Flags().BoolVarP(&args.runInDaemonMode, "daemon", "d", false, "run in daemon mode")
	return cmd
}

// run executes the command line and returns the process exit code
func run(argv []string, stderr io.Writer, factory serverFactory) int {
	exitCode := consts.EXIT_OK
	cmd := newRootCommand(stderr, factory, &exitCode)
	cmd.SetArgs(argv)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run 'gameserver --help' for usage.\n")
		return consts.EXIT_FAILURE
	}
	return exitCode
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, roles.CreateProcess))
}
