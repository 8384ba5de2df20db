package sweep

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
)

func NewController(options ...Option) Controller {
	opts := optionNew(options...)

	return &controllerImpl{
		logger: opts.logger.WithFields(l.StringField(l.ClsKey, "controllerImpl")),
		clock:  opts.clock,
		easing: opts.easing,
		state:  StateIdle,
	}
}

type controllerImpl struct {
	logger l.Wrapper
	clock  Clock
	easing Easing

	lock       sync.Mutex
	runID      uint64
	state      State
	sweep      int
	startedAt  time.Time
	duration   time.Duration
	onProgress ProgressFunc

	pending  []progressEvent
	draining bool
}

type progressEvent struct {
	runID      uint64
	sweep      int
	onProgress ProgressFunc
}

func (impl *controllerImpl) Start(duration time.Duration, onProgress ProgressFunc) (runID uint64) {
	impl.lock.Lock()

	if impl.state == StateRunning {
		impl.logger.WithFields(l.UInt64Field("runID", impl.runID), l.IntField("sweep", impl.sweep)).
			Debug("start: cancel active run")
	}

	runID = snowflake.ID()

	impl.runID = runID
	impl.state = StateRunning
	impl.sweep = 0
	impl.startedAt = impl.clock.Now()
	impl.duration = duration
	impl.onProgress = onProgress
	impl.enqueueLocked(runID, onProgress, 0)

	impl.lock.Unlock()

	impl.drain()

	return
}

func (impl *controllerImpl) Cancel() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if impl.state != StateRunning {
		return
	}

	impl.state = StateCancelled
	impl.onProgress = nil
}

func (impl *controllerImpl) Reset() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.runID = 0
	impl.state = StateIdle
	impl.sweep = 0
	impl.duration = 0
	impl.onProgress = nil
}

func (impl *controllerImpl) Tick() {
	impl.lock.Lock()

	if impl.state != StateRunning {
		impl.lock.Unlock()

		return
	}

	fraction := 1.0
	if impl.duration > 0 {
		fraction = float64(impl.clock.Now().Sub(impl.startedAt)) / float64(impl.duration)
	}

	var sweep int

	if fraction >= 1 {
		sweep = FullSweepDegrees
		impl.state = StateCompleted
	} else {
		sweep = impl.sweepAt(fraction)
	}

	if sweep < impl.sweep {
		sweep = impl.sweep
	}

	impl.sweep = sweep
	impl.enqueueLocked(impl.runID, impl.onProgress, sweep)

	if impl.state == StateCompleted {
		impl.onProgress = nil
	}

	impl.lock.Unlock()

	impl.drain()
}

func (impl *controllerImpl) sweepAt(fraction float64) int {
	if fraction < 0 {
		fraction = 0
	}

	v := impl.easing(fraction) * FullSweepDegrees
	if math.IsNaN(v) || v < 0 {
		return 0
	}

	if v > FullSweepDegrees {
		return FullSweepDegrees
	}

	return int(v)
}

func (impl *controllerImpl) enqueueLocked(runID uint64, onProgress ProgressFunc, sweep int) {
	if onProgress == nil {
		return
	}

	impl.pending = append(impl.pending, progressEvent{
		runID:      runID,
		sweep:      sweep,
		onProgress: onProgress,
	})
}

// drain delivers queued progress in the order it was recorded. Only one
// caller delivers at a time; a call made while another is delivering,
// including one from inside a callback, leaves its events to that caller.
func (impl *controllerImpl) drain() {
	impl.lock.Lock()

	if impl.draining {
		impl.lock.Unlock()

		return
	}

	impl.draining = true

	for len(impl.pending) > 0 {
		ev := impl.pending[0]
		impl.pending[0] = progressEvent{}
		impl.pending = impl.pending[1:]

		impl.lock.Unlock()

		impl.emit(ev.runID, ev.onProgress, ev.sweep)

		impl.lock.Lock()
	}

	impl.pending = nil
	impl.draining = false

	impl.lock.Unlock()
}

func (impl *controllerImpl) emit(runID uint64, onProgress ProgressFunc, sweep int) {
	if onProgress == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			impl.logger.WithFields(l.UInt64Field("runID", runID), l.IntField("sweep", sweep),
				l.StringField("panic", fmt.Sprint(r))).Error("progress callback panicked")
		}
	}()

	if err := onProgress(runID, sweep); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.UInt64Field("runID", runID), l.IntField("sweep", sweep)).
			Error("progress callback failed")
	}
}

func (impl *controllerImpl) State() State {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.state
}

func (impl *controllerImpl) Progress() int {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.sweep
}

func (impl *controllerImpl) Snapshot() Snapshot {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return Snapshot{
		RunID:        impl.runID,
		State:        impl.state,
		SweepDegrees: impl.sweep,
	}
}
