package transition

import "github.com/oomph-ac/traverse/assert"

// State is the lifecycle state of a Handle.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCompleted:
		return "Completed"
	case StateCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Task is cooperative work advanced once per frame. Step returns true once the task is finished.
type Task interface {
	Step(dt float32) bool
}

// Handle tracks a single run of a Task.
type Handle struct {
	task       Task
	state      State
	onComplete func()
}

// State returns the current state of the handle. A nil handle is Idle.
func (h *Handle) State() State {
	if h == nil {
		return StateIdle
	}
	return h.state
}

// Active returns true while the task has neither completed nor been cancelled.
func (h *Handle) Active() bool {
	return h.State() == StateRunning
}

// Slot runs at most one Task at a time. Starting a new task cancels the one in flight first.
type Slot struct {
	current *Handle
}

// Start cancels any running task and starts t. onComplete, which may be nil, runs once t finishes unless
// the task is cancelled first.
func (s *Slot) Start(t Task, onComplete func()) *Handle {
	assert.IsTrue(t != nil, "transition slot started with nil task")

	s.Cancel()
	h := &Handle{task: t, state: StateRunning, onComplete: onComplete}
	s.current = h
	return h
}

// Cancel stops the running task, if any, without running its completion callback.
func (s *Slot) Cancel() {
	if s.current == nil {
		return
	}
	if s.current.state == StateRunning {
		s.current.state = StateCancelled
	}
	s.current = nil
}

// Active returns true if a task is in flight.
func (s *Slot) Active() bool {
	return s.current.Active()
}

// Current returns the handle in flight, or nil.
func (s *Slot) Current() *Handle {
	return s.current
}

// Step advances the running task by dt. When the task finishes it is released before its completion
// callback runs, so the callback may start another task on the same slot.
func (s *Slot) Step(dt float32) {
	h := s.current
	if h == nil {
		return
	}

	done := h.task.Step(dt)
	if h.state != StateRunning {
		// The task cancelled itself, or something it called did.
		return
	}
	if !done {
		return
	}

	h.state = StateCompleted
	if s.current == h {
		s.current = nil
	}
	if h.onComplete != nil {
		h.onComplete()
	}
}
