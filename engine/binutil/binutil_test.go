package binutil

import (
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/xiaonanln/gameserver/engine/gwlog"
)

func TestSetupHTTPServerDisabled(t *testing.T) {
	addr, err := SetupHTTPServer("")
	assert.Equal(t, nil, err)
	assert.Equal(t, "", addr)
}

func TestSetupHTTPServer(t *testing.T) {
	addr, err := SetupHTTPServer("127.0.0.1:0")
	assert.Equal(t, nil, err)

	resp, err := http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatalf("get metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := ioutil.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.T(t, strings.Contains(string(body), "go_goroutines"), "metrics should contain go collector")

	resp2, err := http.Get("http://" + addr + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof failed: %v", err)
	}
	resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestSetupHTTPServerBadAddr(t *testing.T) {
	_, err := SetupHTTPServer("not-an-address")
	assert.T(t, err != nil, "bad address should fail")
}

func TestSetupGWLog(t *testing.T) {
	defer gwlog.SetOutput([]string{"stderr"})
	SetupGWLog("binutil_test", "warn", "", false)
	assert.Equal(t, gwlog.WarnLevel, gwlog.GetLevel())
	SetupGWLog("binutil_test", "debug", "", true)
	assert.Equal(t, gwlog.DebugLevel, gwlog.GetLevel())
}
