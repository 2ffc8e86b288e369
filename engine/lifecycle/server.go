// Package lifecycle implements the process lifecycle shared by all server roles.
//
// A Server is constructed for one role, initialized once, then runs a fixed
// period tick loop until Shutdown is requested. Shutdown may come from any
// goroutine (signal handling, another service, the loop itself): it only flips
// an atomic flag, the loop notices it at the next tick and tears down on its own
// goroutine.
//
//	Constructed --Initialize--> Initialized --Run--> Running --Shutdown--> ShuttingDown --> Stopped
package lifecycle

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/xiaonanln/go-xnsyncutil/xnsyncutil"
	timer "github.com/xiaonanln/goTimer"
	"github.com/xiaonanln/gameserver/engine/consts"
	"github.com/xiaonanln/gameserver/engine/gwlog"
	"github.com/xiaonanln/gameserver/engine/opmon"
	"github.com/xiaonanln/gameserver/engine/post"
	"github.com/xiaonanln/gameserver/engine/role"
	"github.com/xiaonanln/gameserver/engine/uuid"
	"go.uber.org/atomic"
)

var (
	// ErrAlreadyInitialized is returned by a second call to Initialize
	ErrAlreadyInitialized = errors.New("server already initialized")
	// ErrNotInitialized is returned by Run when Initialize did not succeed
	ErrNotInitialized = errors.New("server not initialized")
	// ErrStopped is returned by Run once the server has stopped
	ErrStopped = errors.New("server stopped")
)

// Server is the lifecycle of one server process
type Server struct {
	role  role.Role
	id    uint32
	hooks Hooks

	state       atomic.Int32
	running     atomic.Bool
	initStarted atomic.Bool
	ticks       atomic.Uint64
	overruns    atomic.Uint64

	tickInterval   time.Duration
	statusInterval time.Duration

	posts       post.Queue
	monitor     *opmon.Monitor
	opName      string
	statusTimer *timer.Timer
	stopped     *xnsyncutil.OneTimeCond
}

// New creates a server of the specified role. It never fails.
func New(r role.Role, hooks Hooks) *Server {
	s := &Server{
		role:           r,
		id:             uuid.GenProcessID(),
		hooks:          hooks,
		tickInterval:   consts.TICK_INTERVAL,
		statusInterval: consts.STATUS_REPORT_INTERVAL,
		monitor:        opmon.NewMonitor(),
		opName:         "tick." + r.Token(),
		stopped:        xnsyncutil.NewOneTimeCond(),
	}
	s.setState(StateConstructed)
	return s
}

func (s *Server) String() string {
	return s.role.String() + "<" + s.State().String() + ">"
}

// Role returns the role of the server
func (s *Server) Role() role.Role {
	return s.role
}

// ID returns the random process identity of the server
func (s *Server) ID() uint32 {
	return s.id
}

// State returns the current lifecycle state
func (s *Server) State() State {
	return State(s.state.Load())
}

func (s *Server) setState(st State) {
	s.state.Store(int32(st))
}

// IsRunning returns true between Run and the next observed Shutdown
func (s *Server) IsRunning() bool {
	return s.running.Load()
}

// Ticks returns the number of completed ticks
func (s *Server) Ticks() uint64 {
	return s.ticks.Load()
}

// Overruns returns the number of ticks that took longer than the tick interval
func (s *Server) Overruns() uint64 {
	return s.overruns.Load()
}

// TickInterval returns the period of the tick loop
func (s *Server) TickInterval() time.Duration {
	return s.tickInterval
}

// SetTickInterval sets the period of the tick loop, must be called before Run
func (s *Server) SetTickInterval(d time.Duration) {
	if d <= 0 {
		d = consts.TICK_INTERVAL
	}
	s.tickInterval = d
}

// SetStatusInterval sets the interval of the status report, 0 disables it. Must be called before Run
func (s *Server) SetStatusInterval(d time.Duration) {
	s.statusInterval = d
}

// Post a callback to be run on the loop goroutine at the next tick
func (s *Server) Post(f func()) {
	s.posts.Post(f)
}

// Initialize runs the Init hook of the role.
//
// It must succeed before Run. Only the first call does anything.
func (s *Server) Initialize() error {
	if !s.initStarted.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	gwlog.Infof("Initializing %s server (PID: %d)...", s.role, s.id)
	if err := s.hooks.init(s); err != nil {
		return errors.Wrapf(err, "initialize %s server", s.role)
	}
	s.setState(StateInitialized)
	return nil
}

// Run runs the tick loop until Shutdown is called.
//
// Run returns nil immediately if the loop is already running.
func (s *Server) Run() error {
	if !s.state.CompareAndSwap(int32(StateInitialized), int32(StateRunning)) {
		switch s.State() {
		case StateConstructed:
			return ErrNotInitialized
		case StateRunning:
			return nil
		default:
			return ErrStopped
		}
	}

	s.running.Store(true)
	finished := false
	defer func() {
		if !finished { // a hook panicked, release waiters and let the panic go on
			s.running.Store(false)
			s.cancelStatusReport()
			s.setState(StateStopped)
			s.stopped.Signal()
		}
	}()

	s.startStatusReport()
	s.loop()
	s.teardown()
	finished = true
	return nil
}

func (s *Server) loop() {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for s.running.Load() {
		s.tick()
		<-ticker.C
	}
}

func (s *Server) tick() {
	op := s.monitor.StartOperation(s.opName)
	s.posts.Tick()
	timer.Tick()
	s.hooks.update(s)
	s.ticks.Inc()
	if op.Finish(s.tickInterval) { // a tick longer than its period is an overrun
		s.overruns.Inc()
	}
}

func (s *Server) teardown() {
	s.setState(StateShuttingDown)
	s.posts.Tick() // callbacks posted along with the shutdown request
	s.cancelStatusReport()
	s.hooks.teardown(s)
	gwlog.Infof("Shutting down %s server (PID: %d)...", s.role, s.id)
	if consts.OPMON_DUMP_ON_SHUTDOWN {
		s.monitor.Dump(os.Stderr)
	}
	s.setState(StateStopped)
	s.stopped.Signal()
}

// Shutdown asks the tick loop to stop.
//
// It does nothing if the server is not running and is safe to call from any
// goroutine any number of times. Teardown happens on the loop goroutine.
func (s *Server) Shutdown() {
	s.running.CompareAndSwap(true, false)
}

// Wait blocks until the tick loop has stopped. Only call it after Run has been entered.
func (s *Server) Wait() {
	s.stopped.Wait()
}

// Close shuts the server down and waits for the loop if it was running
func (s *Server) Close() {
	s.Shutdown()
	switch s.State() {
	case StateRunning, StateShuttingDown:
		s.Wait()
	}
}
