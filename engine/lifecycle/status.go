package lifecycle

import (
	"os"

	"github.com/shirou/gopsutil/process"
	timer "github.com/xiaonanln/goTimer"
	"github.com/xiaonanln/gameserver/engine/gwlog"
)

// Status is a snapshot of a running server for the periodic status report
type Status struct {
	Role       string
	ID         uint32
	State      string
	Ticks      uint64
	Overruns   uint64
	CPUPercent float64
	RSS        uint64
}

// CollectStatus returns the current status of the server, including CPU and memory usage of the process
func (s *Server) CollectStatus() Status {
	st := Status{
		Role:     s.role.String(),
		ID:       s.id,
		State:    s.State().String(),
		Ticks:    s.Ticks(),
		Overruns: s.Overruns(),
	}

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		gwlog.Warnf("%s: can not find server process: %v", s, err)
		return st
	}
	if pcnt, err := p.CPUPercent(); err == nil {
		st.CPUPercent = pcnt
	}
	if mem, err := p.MemoryInfo(); err == nil {
		st.RSS = mem.RSS
	}
	return st
}

func (s *Server) reportStatus() {
	st := s.CollectStatus()
	gwlog.Infof("%s server (PID: %d) status: ticks=%d overruns=%d cpu=%.3f%% rss=%d",
		st.Role, st.ID, st.Ticks, st.Overruns, st.CPUPercent, st.RSS)
}

// startStatusReport is called on the loop goroutine, the timer fires from timer.Tick in the loop
func (s *Server) startStatusReport() {
	if s.statusInterval <= 0 {
		return
	}
	s.statusTimer = timer.AddTimer(s.statusInterval, s.reportStatus)
}

func (s *Server) cancelStatusReport() {
	if s.statusTimer != nil {
		s.statusTimer.Cancel()
		s.statusTimer = nil
	}
}
