package ringchart

import (
	"context"
	"sync"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libringchart/segment"
	"github.com/sgostarter/libringchart/sweep"
)

// NewChart validates cfg up front; an empty palette fails here, before any
// data is laid out. storage may be nil when Save/Restore are not used.
func NewChart(cfg *Config, storage Storage, logger l.Wrapper, options ...sweep.Option) (Chart, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid config")

		return nil, err
	}

	palette, err := segment.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "chartImpl"))

	ctrlOptions := append([]sweep.Option{sweep.WithLogger(logger)}, options...)

	c := *cfg
	c.Palette = append([]string{}, cfg.Palette...)

	return &chartImpl{
		logger:   logger,
		cfg:      c,
		palette:  palette,
		storage:  storage,
		ctrl:     sweep.NewController(ctrlOptions...),
		segments: []segment.ArcSegment{},
	}, nil
}

type chartImpl struct {
	logger  l.Wrapper
	cfg     Config
	palette segment.Palette
	storage Storage
	ctrl    sweep.Controller

	lock     sync.RWMutex
	data     []DataPoint
	segments []segment.ArcSegment
	total    int64
}

func (impl *chartImpl) SetData(points []DataPoint) error {
	segs, err := segment.ComputeSegmentsForPoints(points, impl.cfg.GapDegrees, impl.palette,
		impl.cfg.StrokeWidth, impl.cfg.RoundedCaps)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("count", len(points))).Error("set data failed")

		return err
	}

	data := append([]DataPoint{}, points...)
	total := segment.Total(points)

	impl.lock.Lock()
	impl.data = data
	impl.segments = segs
	impl.total = total
	impl.lock.Unlock()

	impl.logger.WithFields(l.IntField("count", len(points)), l.Int64Field("total", total)).
		Debug("data set")

	return nil
}

func (impl *chartImpl) Data() []DataPoint {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return append([]DataPoint{}, impl.data...)
}

func (impl *chartImpl) Segments() []segment.ArcSegment {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return append([]segment.ArcSegment{}, impl.segments...)
}

func (impl *chartImpl) StartAnimation(onFrame FrameFunc) (runID uint64) {
	return impl.ctrl.Start(impl.cfg.AnimationDuration(), func(runID uint64, sweepDegrees int) error {
		if onFrame == nil {
			return nil
		}

		snapshot := impl.ctrl.Snapshot()
		if snapshot.RunID != runID {
			snapshot.State = sweep.StateCancelled
		}

		snapshot.RunID = runID
		snapshot.SweepDegrees = sweepDegrees

		onFrame(impl.buildFrame(snapshot))

		return nil
	})
}

func (impl *chartImpl) CancelAnimation() {
	impl.ctrl.Cancel()
}

func (impl *chartImpl) AnimationState() sweep.Snapshot {
	return impl.ctrl.Snapshot()
}

func (impl *chartImpl) Tick() {
	impl.ctrl.Tick()
}

func (impl *chartImpl) Frame() Frame {
	return impl.buildFrame(impl.ctrl.Snapshot())
}

func (impl *chartImpl) buildFrame(snapshot sweep.Snapshot) Frame {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	frame := Frame{
		RunID:        snapshot.RunID,
		State:        snapshot.State,
		SweepDegrees: snapshot.SweepDegrees,
		Total:        impl.total,
		Caption:      impl.cfg.Caption,
		Arcs:         make([]VisibleArc, 0, len(impl.segments)),
		Legend:       make([]LegendRow, 0, len(impl.data)),
	}

	for idx, seg := range impl.segments {
		extent := segment.VisibleExtent(seg, snapshot.SweepDegrees)
		if extent <= 0 {
			continue
		}

		frame.Arcs = append(frame.Arcs, VisibleArc{
			Index:       idx,
			StartAngle:  seg.StartAngle,
			SweepExtent: extent,
			Color:       impl.palette.Color(seg.ColorIndex),
			StrokeWidth: seg.StrokeWidth,
			RoundedCaps: seg.RoundedCaps,
		})
	}

	for idx, point := range impl.data {
		frame.Legend = append(frame.Legend, LegendRow{
			Value: point.Value,
			Label: point.Label,
			Color: impl.palette.Color(idx),
		})
	}

	return frame
}

func (impl *chartImpl) Save(ctx context.Context, key string) error {
	if impl.storage == nil {
		return ErrNoStorage
	}

	err := impl.storage.Save(ctx, key, impl.Data())
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save data failed")
	}

	return err
}

// Restore loads the data saved under key. Animation state is not persisted,
// so the chart always comes back idle.
func (impl *chartImpl) Restore(ctx context.Context, key string) error {
	if impl.storage == nil {
		return ErrNoStorage
	}

	points, err := impl.storage.Load(ctx, key)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("load data failed")

		return err
	}

	err = impl.SetData(points)
	if err != nil {
		return err
	}

	impl.ctrl.Reset()

	return nil
}
