package signals

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"
)

// sigChan is buffered so a signal delivered while Handle is busy is not lost.
var sigChan = make(chan os.Signal, 1)

// shutdownGrace bounds how long interrupt handlers may run before Handle
// stops waiting for them.
const shutdownGrace = 30 * time.Second

// Handler is a function invoked when the signal it was registered for arrives.
type Handler func()

// HandlerID identifies a registered handler so it can be removed later.
type HandlerID int

// registration pairs a handler with the ID it was issued at registration.
type registration struct {
	id HandlerID
	fn Handler
}

// handlerSet is an ordered list of registrations guarded by its own lock.
// Handlers run in registration order.
type handlerSet struct {
	name string
	mu   sync.RWMutex
	next HandlerID
	list []registration
}

func (s *handlerSet) add(f Handler) HandlerID {
	if f == nil {
		return -1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.list = append(s.list, registration{id: id, fn: f})
	return id
}

func (s *handlerSet) remove(id HandlerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.list {
		if r.id == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return
		}
	}
}

func (s *handlerSet) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

// runTimeout runs the set on its own goroutine and waits at most d for it
// to finish. Returns false when the handlers were still running at the
// deadline; they keep running, only the wait is abandoned.
func (s *handlerSet) runTimeout(d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run()
	}()
	select {
	case <-done:
		return true
	case <-time.After(d):
		fmt.Fprintf(os.Stderr, "signals: %s handlers still running after %v\n", s.name, d)
		return false
	}
}

// run calls every handler in the set, isolating panics so one broken
// handler cannot stop signal dispatch for the rest.
func (s *handlerSet) run() {
	s.mu.RLock()
	snapshot := make([]registration, len(s.list))
	copy(snapshot, s.list)
	s.mu.RUnlock()
	for _, r := range snapshot {
		func() {
			defer func() {
				if v := recover(); v != nil {
					// This package has no logger; stderr keeps panicking
					// handlers visible without pulling logging in here.
					fmt.Fprintf(os.Stderr, "signals: panic in %s handler: %v\n", s.name, v)
				}
			}()
			r.fn()
		}()
	}
}

var (
	reloaders    = &handlerSet{name: "reload"}
	interrupters = &handlerSet{name: "interrupt"}
	stopOnce     sync.Once
)

// RegisterReloadHandler registers f to run when a reload signal arrives
// (SIGHUP on unix). The monitor registers its configuration re-read here.
// Returns an ID usable with DeregisterReloadHandler; nil handlers are
// ignored and return -1.
func RegisterReloadHandler(f Handler) HandlerID {
	return reloaders.add(f)
}

// DeregisterReloadHandler removes a reload handler by its ID.
// Unknown IDs are a no-op.
func DeregisterReloadHandler(id HandlerID) {
	reloaders.remove(id)
}

// RegisterInterruptHandler registers f to run when an interrupt signal
// arrives (SIGINT, SIGTERM). Returns an ID usable with
// DeregisterInterruptHandler; nil handlers are ignored and return -1.
func RegisterInterruptHandler(f Handler) HandlerID {
	return interrupters.add(f)
}

// DeregisterInterruptHandler removes an interrupt handler by its ID.
// Unknown IDs are a no-op.
func DeregisterInterruptHandler(id HandlerID) {
	interrupters.remove(id)
}

// StopHandle stops signal delivery and closes the channel, causing Handle
// to return. Safe to call more than once; only the first call takes effect.
func StopHandle() {
	stopOnce.Do(func() {
		signal.Stop(sigChan)
		close(sigChan)
	})
}
