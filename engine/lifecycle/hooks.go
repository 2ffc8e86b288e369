package lifecycle

// Hooks are the role specific parts of a server.
//
// All hooks run on the goroutine that calls Initialize or Run. A nil hook does nothing.
type Hooks struct {
	// Init prepares the role, a non-nil error aborts startup
	Init func(s *Server) error
	// Update is called once every tick
	Update func(s *Server)
	// Teardown is called once after the tick loop exits
	Teardown func(s *Server)
}

func (h Hooks) init(s *Server) error {
	if h.Init == nil {
		return nil
	}
	return h.Init(s)
}

func (h Hooks) update(s *Server) {
	if h.Update != nil {
		h.Update(s)
	}
}

func (h Hooks) teardown(s *Server) {
	if h.Teardown != nil {
		h.Teardown(s)
	}
}
