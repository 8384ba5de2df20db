package ringchart

import (
	"context"
	"image/color"

	"github.com/sgostarter/libringchart/segment"
	"github.com/sgostarter/libringchart/sweep"
)

type DataPoint = segment.DataPoint

// VisibleArc is the drawable part of one segment at the current sweep.
type VisibleArc struct {
	Index       int
	StartAngle  float64
	SweepExtent float64
	Color       color.RGBA
	StrokeWidth float64
	RoundedCaps bool
}

type LegendRow struct {
	Value int64
	Label string
	Color color.RGBA
}

// Frame is everything a host needs to paint the chart once.
type Frame struct {
	RunID        uint64
	State        sweep.State
	SweepDegrees int

	Total   int64
	Caption string

	Arcs   []VisibleArc
	Legend []LegendRow
}

type FrameFunc func(frame Frame)

// Storage persists the data list across host reconfiguration. Load returns
// commerr.ErrNotFound for an unknown key.
type Storage interface {
	Load(ctx context.Context, key string) ([]DataPoint, error)
	Save(ctx context.Context, key string, points []DataPoint) error
}

type Chart interface {
	sweep.Ticker

	SetData(points []DataPoint) error
	Data() []DataPoint
	Segments() []segment.ArcSegment

	StartAnimation(onFrame FrameFunc) (runID uint64)
	CancelAnimation()
	AnimationState() sweep.Snapshot

	Frame() Frame

	Save(ctx context.Context, key string) error
	Restore(ctx context.Context, key string) error
}
