package config

import (
	"encoding/json"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/xiaonanln/gameserver/engine/consts"
	"github.com/xiaonanln/gameserver/engine/gwlog"
	"github.com/xiaonanln/gameserver/engine/role"
)

const (
	_COMMON_SECTION          = "common"
	_DEFAULT_LOG_LEVEL       = "debug"
	_DEFAULT_TICK_INTERVAL   = consts.TICK_INTERVAL
	_DEFAULT_STATUS_INTERVAL = consts.STATUS_REPORT_INTERVAL
)

var (
	configFilePath     = consts.DEFAULT_CONFIG_FILE
	configFileExplicit = false
	gameServerConfig   *GameServerConfig
	configLock         sync.Mutex
)

// ServerConfig defines fields of a server process config
type ServerConfig struct {
	LogFile        string
	LogStderr      bool
	LogLevel       string
	TickInterval   time.Duration
	StatusInterval time.Duration
	HTTPAddr       string
	GoMaxProcs     int
}

// GameServerConfig defines the total config file structure
type GameServerConfig struct {
	Common ServerConfig
	Roles  map[role.Role]*ServerConfig
}

// SetConfigFile sets the config file path (gameserver.ini by default).
//
// An explicitly set config file must exist, while a missing default config file
// just means running with default values.
func SetConfigFile(f string) {
	configLock.Lock()
	configFilePath = f
	configFileExplicit = true
	gameServerConfig = nil
	configLock.Unlock()
}

// GetConfigFilePath returns the config file path
func GetConfigFilePath() string {
	configLock.Lock()
	defer configLock.Unlock()
	return configFilePath
}

// GetConfigDir returns the directory of the config file
func GetConfigDir() string {
	dir, _ := path.Split(GetConfigFilePath())
	return dir
}

// Get returns the total config
func Get() (*GameServerConfig, error) {
	configLock.Lock()
	defer configLock.Unlock()
	if gameServerConfig == nil {
		cfg, err := readGameServerConfigFile()
		if err != nil {
			return nil, err
		}
		gameServerConfig = cfg
	}
	return gameServerConfig, nil
}

// Reload forces the whole config to be read again
func Reload() (*GameServerConfig, error) {
	configLock.Lock()
	gameServerConfig = nil
	configLock.Unlock()

	return Get()
}

// GetRole returns the config of the specified role, falling back to [common]
func GetRole(r role.Role) (*ServerConfig, error) {
	cfg, err := Get()
	if err != nil {
		return nil, err
	}
	return cfg.Role(r), nil
}

// Role returns the config of the specified role, falling back to [common]
func (cfg *GameServerConfig) Role(r role.Role) *ServerConfig {
	if sc := cfg.Roles[r]; sc != nil {
		return sc
	}
	sc := cfg.Common
	return &sc
}

// DumpPretty format config to string in pretty format
func DumpPretty(cfg interface{}) string {
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(s)
}

func readGameServerConfigFile() (*GameServerConfig, error) {
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) && !configFileExplicit {
		gwlog.Infof("Config file %s not found, using default config", configFilePath)
		return readGameServerConfig([]byte{})
	}

	gwlog.Infof("Using config file: %s", configFilePath)
	return readGameServerConfig(configFilePath)
}

// readGameServerConfig reads config from a file path or raw []byte
func readGameServerConfig(source interface{}) (*GameServerConfig, error) {
	config := GameServerConfig{
		Roles: map[role.Role]*ServerConfig{},
	}
	// section and key names are case-insensitive
	iniFile, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, source)
	if err != nil {
		return nil, errors.Wrap(err, "read config error")
	}

	setDefaults(&config.Common)
	if err := readServerConfig(iniFile.Section(_COMMON_SECTION), &config.Common); err != nil {
		return nil, err
	}

	for _, sec := range iniFile.Sections() {
		secName := strings.ToLower(sec.Name())
		if secName == strings.ToLower(ini.DefaultSection) || secName == _COMMON_SECTION {
			continue
		}

		r, ok := role.ParseRole(secName)
		if !ok {
			return nil, errors.Errorf("unknown section: %s", sec.Name())
		}
		sc := config.Common // copy from common
		if err := readServerConfig(sec, &sc); err != nil {
			return nil, err
		}
		config.Roles[r] = &sc
	}

	return &config, nil
}

func setDefaults(sc *ServerConfig) {
	sc.LogFile = ""
	sc.LogStderr = true
	sc.LogLevel = _DEFAULT_LOG_LEVEL
	sc.TickInterval = _DEFAULT_TICK_INTERVAL
	sc.StatusInterval = _DEFAULT_STATUS_INTERVAL
	sc.HTTPAddr = "" // debug http server not enabled by default
	sc.GoMaxProcs = 0
}

func readServerConfig(sec *ini.Section, sc *ServerConfig) error {
	for _, key := range sec.Keys() {
		var err error
		name := strings.ToLower(key.Name())
		switch name {
		case "log_file":
			sc.LogFile = key.String()
		case "log_stderr":
			sc.LogStderr, err = key.Bool()
		case "log_level":
			sc.LogLevel = key.String()
		case "tick_interval_ms":
			var ms int
			if ms, err = key.Int(); err == nil {
				if ms <= 0 {
					err = errors.Errorf("must be positive, but is %d", ms)
				}
				sc.TickInterval = time.Millisecond * time.Duration(ms)
			}
		case "status_interval":
			var secs int
			if secs, err = key.Int(); err == nil {
				sc.StatusInterval = time.Second * time.Duration(secs)
			}
		case "http_addr":
			sc.HTTPAddr = key.String()
		case "gomaxprocs":
			sc.GoMaxProcs, err = key.Int()
		default:
			return errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
		if err != nil {
			return errors.Wrapf(err, "section %s: invalid %s", sec.Name(), key.Name())
		}
	}
	return nil
}
