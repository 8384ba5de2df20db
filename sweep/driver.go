package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
)

const DefaultFrameInterval = time.Second / 60

// NewFrameDriver ticks t on its own routine every interval. Ticks never
// overlap: a slow Tick delays the next one instead of queueing more.
func NewFrameDriver(t Ticker, interval time.Duration, logger l.Wrapper) FrameDriver {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return &frameDriverImpl{
		logger:   logger.WithFields(l.StringField(l.ClsKey, "frameDriverImpl")),
		ticker:   t,
		interval: interval,
	}
}

type frameDriverImpl struct {
	logger   l.Wrapper
	ticker   Ticker
	interval time.Duration

	lock       sync.Mutex
	routineMan routineman.RoutineMan
}

func (impl *frameDriverImpl) Start() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if impl.routineMan != nil || impl.ticker == nil {
		return
	}

	impl.routineMan = routineman.NewRoutineMan(context.Background(), impl.logger)
	impl.routineMan.StartRoutine(impl.frameRoutine, "frameRoutine")
}

func (impl *frameDriverImpl) Stop() {
	impl.lock.Lock()
	routineMan := impl.routineMan
	impl.routineMan = nil
	impl.lock.Unlock()

	if routineMan == nil {
		return
	}

	routineMan.TriggerStop()
	routineMan.Wait()
}

func (impl *frameDriverImpl) Running() bool {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.routineMan != nil
}

func (impl *frameDriverImpl) frameRoutine(ctx context.Context, _ func() bool) {
	ticker := time.NewTicker(impl.interval)
	defer ticker.Stop()

	impl.logger.Debug("enter frame routine")

	defer impl.logger.Debug("leave frame routine")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			impl.ticker.Tick()
		}
	}
}
