package segment

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func utPalette(n int) Palette {
	p := make(Palette, 0, n)
	for i := 0; i < n; i++ {
		p = append(p, color.RGBA{R: uint8(i * 40), A: 0xff})
	}

	return p
}

func TestComputeSegments(t *testing.T) {
	segs, err := ComputeSegments([]int64{4, 5, 10}, 3, utPalette(3), 6, true)
	assert.Nil(t, err)

	want := []ArcSegment{
		{StartAngle: 3, SweepExtent: 400.0/19 - 3, ColorIndex: 0, StrokeWidth: 6, RoundedCaps: true},
		{StartAngle: 3 + 400.0/19, SweepExtent: 500.0/19 - 3, ColorIndex: 1, StrokeWidth: 6, RoundedCaps: true},
		{StartAngle: 3 + 900.0/19, SweepExtent: 1000.0/19 - 3, ColorIndex: 2, StrokeWidth: 6, RoundedCaps: true},
	}

	if diff := cmp.Diff(want, segs, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}

	assert.InDelta(t, 21.05, 400.0/19, 0.01)
	assert.InDelta(t, 18.05, segs[0].SweepExtent, 0.01)
	assert.InDelta(t, 24.05, segs[1].StartAngle, 0.01)
	assert.InDelta(t, 50.37, segs[2].StartAngle, 0.01)
}

func TestComputeSegmentsSingleValue(t *testing.T) {
	segs, err := ComputeSegments([]int64{1}, 3, utPalette(1), 6, false)
	assert.Nil(t, err)
	assert.Len(t, segs, 1)
	assert.EqualValues(t, 3, segs[0].StartAngle)
	assert.InDelta(t, 97, segs[0].SweepExtent, 1e-9)
	assert.False(t, segs[0].RoundedCaps)
}

func TestComputeSegmentsZeroTotal(t *testing.T) {
	for _, values := range [][]int64{nil, {}, {0}, {0, 0, 0}} {
		segs, err := ComputeSegments(values, 3, utPalette(2), 6, true)
		assert.Nil(t, err)
		assert.NotNil(t, segs)
		assert.Empty(t, segs)
	}
}

func TestComputeSegmentsNegative(t *testing.T) {
	segs, err := ComputeSegments([]int64{4, -1, 10}, 3, utPalette(2), 6, true)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Nil(t, segs)

	_, err = ComputeSegments([]int64{-5}, 0, utPalette(2), 6, true)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestComputeSegmentsEmptyPalette(t *testing.T) {
	_, err := ComputeSegments([]int64{1, 2}, 3, nil, 6, true)
	assert.True(t, errors.Is(err, ErrEmptyPalette))

	_, err = NewPalette(nil)
	assert.True(t, errors.Is(err, ErrEmptyPalette))
}

func TestComputeSegmentsCyclicColors(t *testing.T) {
	segs, err := ComputeSegments([]int64{1, 1, 1, 1, 1}, 3, utPalette(2), 6, true)
	assert.Nil(t, err)

	idxes := make([]int, 0, len(segs))
	for _, seg := range segs {
		idxes = append(idxes, seg.ColorIndex)
	}

	assert.EqualValues(t, []int{0, 1, 0, 1, 0}, idxes)
}

func TestComputeSegmentsClamp(t *testing.T) {
	// 1 of 100 is 1%, below a 3% gap
	segs, err := ComputeSegments([]int64{1, 99}, 3, utPalette(2), 6, true)
	assert.Nil(t, err)
	assert.Len(t, segs, 2)
	assert.EqualValues(t, 0, segs[0].SweepExtent)
	assert.EqualValues(t, 3, segs[0].StartAngle)
	assert.InDelta(t, 6, segs[1].StartAngle, 1e-9)
	assert.InDelta(t, 96, segs[1].SweepExtent, 1e-9)

	// exactly at the gap
	segs, err = ComputeSegments([]int64{3, 97}, 3, utPalette(2), 6, true)
	assert.Nil(t, err)
	assert.InDelta(t, 0, segs[0].SweepExtent, 1e-9)
	assert.True(t, segs[0].SweepExtent >= 0)
}

func TestComputeSegmentsSumProperty(t *testing.T) {
	// nolint: gosec
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(6)
		values := make([]int64, n)

		var nonZero int

		for idx := range values {
			if r.Intn(3) == 0 {
				continue
			}

			values[idx] = 10 + r.Int63n(11)
			nonZero++
		}

		if nonZero == 0 {
			values[r.Intn(n)] = 10
			nonZero = 1
		}

		gap := float64(r.Intn(4))

		segs, err := ComputeSegments(values, gap, utPalette(3), 6, true)
		assert.Nil(t, err)
		assert.Len(t, segs, n)

		var sum float64
		for idx, seg := range segs {
			sum += seg.SweepExtent

			if values[idx] == 0 {
				assert.EqualValues(t, 0, seg.SweepExtent)
			}
		}

		assert.InDelta(t, 100, sum+float64(nonZero)*gap, 1e-9, values)
		assert.InDelta(t, 100+float64(n-nonZero)*gap, segs[n-1].EndAngle(), 1e-9, values)
	}
}

func TestComputeSegmentsTotalOverflow(t *testing.T) {
	for _, values := range [][]int64{
		{math.MaxInt64, 1},
		{math.MaxInt64 / 2, math.MaxInt64 / 2, 4},
	} {
		segs, err := ComputeSegments(values, 3, utPalette(2), 6, true)
		assert.True(t, errors.Is(err, ErrInvalidInput), values)
		assert.Nil(t, segs)
	}

	segs, err := ComputeSegments([]int64{math.MaxInt64, 0}, 3, utPalette(2), 6, true)
	assert.Nil(t, err)
	assert.InDelta(t, 97, segs[0].SweepExtent, 1e-9)
	assert.EqualValues(t, 0, segs[1].SweepExtent)
}

func TestComputeSegmentsDeterministic(t *testing.T) {
	values := []int64{7, 0, 13, 2, 40, 1}

	first, err := ComputeSegments(values, 2.5, utPalette(4), 8, true)
	assert.Nil(t, err)

	for i := 0; i < 10; i++ {
		again, err := ComputeSegments(values, 2.5, utPalette(4), 8, true)
		assert.Nil(t, err)
		assert.True(t, cmp.Equal(first, again))
	}
}

func TestComputeSegmentsForPoints(t *testing.T) {
	points := []DataPoint{{Value: 4, Label: "a"}, {Value: 5, Label: "b"}, {Value: 10}}

	segs, err := ComputeSegmentsForPoints(points, 3, utPalette(3), 6, true)
	assert.Nil(t, err)
	assert.Len(t, segs, 3)
	assert.EqualValues(t, 19, Total(points))
	assert.EqualValues(t, []int64{4, 5, 10}, Values(points))
}
