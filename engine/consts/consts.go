package consts

import "time"

// Tunable Options
const (
	// For Lifecycle
	// TICK_INTERVAL is the period of the server run loop (~60 ticks per second)
	TICK_INTERVAL = time.Millisecond * 16
	// STATUS_REPORT_INTERVAL is the default interval of the periodic status report, 0 disables it
	STATUS_REPORT_INTERVAL = time.Minute

	// For Operation Monitor
	// OPMON_DUMP_ON_SHUTDOWN prints collected tick statistics when a server stops
	OPMON_DUMP_ON_SHUTDOWN = true

	// For Config
	// DEFAULT_CONFIG_FILE is the config file read when no -configfile is given
	DEFAULT_CONFIG_FILE = "gameserver.ini"
)

// Exit codes of the gameserver executable
const (
	// EXIT_OK is returned after a graceful shutdown
	EXIT_OK = 0
	// EXIT_FAILURE is returned when initialization fails or the process faults
	EXIT_FAILURE = 1
)
