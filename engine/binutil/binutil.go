package binutil

import (
	"net"
	"net/http"
	_ "net/http/pprof"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xiaonanln/gameserver/engine/gwlog"
)

// SetupHTTPServer starts the HTTP server for go tool pprof and prometheus metrics.
//
// An empty addr leaves the server disabled. Returns the address actually listened on.
func SetupHTTPServer(addr string) (string, error) {
	if addr == "" {
		gwlog.Infof("http server not enabled")
		return "", nil
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", errors.Wrapf(err, "listen http %s", addr)
	}

	httpHost := ln.Addr().String()
	gwlog.Infof("http server listening on %s", httpHost)
	gwlog.Infof("pprof http://%s/debug/pprof/ ... available commands: ", httpHost)
	gwlog.Infof("    go tool pprof http://%s/debug/pprof/heap", httpHost)
	gwlog.Infof("    go tool pprof http://%s/debug/pprof/profile", httpHost)
	gwlog.Infof("metrics http://%s/metrics", httpHost)

	mux := http.NewServeMux()
	mux.Handle("/debug/", http.DefaultServeMux) // net/http/pprof registers on the default mux
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.Serve(ln, mux); err != nil {
			gwlog.Errorf("http server %s quit: %v", httpHost, err)
		}
	}()
	return httpHost, nil
}

// SetupGWLog setup the log system of a server process
func SetupGWLog(component string, logLevel string, logFile string, logStderr bool) {
	gwlog.SetSource(component)
	gwlog.Infof("Set log level to %s", logLevel)
	gwlog.SetLevel(gwlog.ParseLevel(logLevel))

	outputs := make([]string, 0, 2)
	if logFile != "" {
		outputs = append(outputs, logFile)
	}
	if logStderr || len(outputs) == 0 {
		outputs = append(outputs, "stderr")
	}
	gwlog.SetOutput(outputs)
}
