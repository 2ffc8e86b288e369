package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/xiaonanln/gameserver/engine/binutil"
	"github.com/xiaonanln/gameserver/engine/config"
	"github.com/xiaonanln/gameserver/engine/consts"
	"github.com/xiaonanln/gameserver/engine/gwlog"
	"github.com/xiaonanln/gameserver/engine/gwutils"
	"github.com/xiaonanln/gameserver/engine/role"
	"github.com/xiaonanln/gameserver/engine/sigbridge"
)

// initError marks a failed Initialize, as opposed to a fault while running
type initError struct {
	err error
}

func (ie *initError) Error() string {
	return ie.err.Error()
}

// start brings up the server process of the role named by token and returns the exit code
func start(token string, args startArgs, stderr io.Writer, factory serverFactory) int {
	r, known := role.ParseRole(token)

	if args.runInDaemonMode {
		daemoncontext := binutil.Daemonize()
		defer daemoncontext.Release()
	}

	if args.configFile != "" {
		config.SetConfigFile(args.configFile)
	}
	cfg, err := config.GetRole(r)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read config: %v\n", err)
		return consts.EXIT_FAILURE
	}

	logLevel := args.logLevel
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	binutil.SetupGWLog(r.Token(), logLevel, cfg.LogFile, cfg.LogStderr)
	defer gwlog.Sync()
	if !known && token != "" {
		gwlog.Warnf("unknown process type %q, starting %s server", token, r)
	}
	gwlog.Debugf("%s server config: %s", r, config.DumpPretty(cfg))

	if cfg.GoMaxProcs > 0 {
		gwlog.Infof("SET GOMAXPROCS = %d", cfg.GoMaxProcs)
		runtime.GOMAXPROCS(cfg.GoMaxProcs)
	}
	if _, err := binutil.SetupHTTPServer(cfg.HTTPAddr); err != nil {
		fmt.Fprintf(stderr, "Failed to start http server: %v\n", err)
		return consts.EXIT_FAILURE
	}

	err = gwutils.CatchPanic(func() error {
		return serve(r, cfg, stderr, factory)
	})

	switch e := err.(type) {
	case nil:
		gwlog.Infof("%s server terminated gracefully.", r)
		return consts.EXIT_OK
	case *initError:
		fmt.Fprintf(stderr, "Failed to initialize server: %v\n", e)
		return consts.EXIT_FAILURE
	case *gwutils.PanicError:
		gwlog.Errorf("%s server crashed: %v\n%s", r, e.Value, e.Stack)
	}
	fmt.Fprintf(stderr, "Fatal error: %v\n", err)
	return consts.EXIT_FAILURE
}

// serve owns the one server of the process from construction to Stopped
func serve(r role.Role, cfg *config.ServerConfig, stderr io.Writer, factory serverFactory) error {
	s := factory(r)
	defer s.Close()
	s.SetTickInterval(cfg.TickInterval)
	s.SetStatusInterval(cfg.StatusInterval)
	fmt.Fprintf(stderr, "Starting %s server (PID: %d)\n", s.Role(), s.ID())

	sigbridge.Bind(s)
	stopSignals := sigbridge.Install()
	defer func() {
		stopSignals()
		sigbridge.Unbind()
	}()

	if err := s.Initialize(); err != nil {
		return &initError{err}
	}
	return s.Run()
}
