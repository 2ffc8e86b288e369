package lifecycle

// State is the lifecycle state of a server process
type State int32

const (
	// StateConstructed is the state right after New
	StateConstructed State = iota
	// StateInitialized is reached when Initialize succeeds
	StateInitialized
	// StateRunning while the tick loop runs
	StateRunning
	// StateShuttingDown after the loop noticed the shutdown request and before teardown is done
	StateShuttingDown
	// StateStopped is terminal, there is no restart
	StateStopped
)

func (st State) String() string {
	switch st {
	case StateConstructed:
		return "Constructed"
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}
