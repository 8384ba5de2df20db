package sweep

import "time"

const FullSweepDegrees = 360

type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	}

	return "unknown"
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}

// ProgressFunc receives every sweep value emitted by a run, in order and
// starting with 0. Errors and panics are logged by the controller and never
// stop the run. A callback may call back into the controller; progress it
// causes is delivered after the callback returns.
type ProgressFunc func(runID uint64, sweepDegrees int) error

type Snapshot struct {
	RunID        uint64
	State        State
	SweepDegrees int
}

type Ticker interface {
	Tick()
}

type Controller interface {
	Ticker

	// Start cancels any active run and begins a new one at 0 degrees.
	Start(duration time.Duration, onProgress ProgressFunc) (runID uint64)
	Cancel()
	// Reset drops any run and returns to StateIdle at 0 degrees.
	Reset()

	State() State
	Progress() int
	Snapshot() Snapshot
}

type FrameDriver interface {
	Start()
	Stop()
	Running() bool
}
