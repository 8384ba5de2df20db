package yamlstorage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libringchart/ringchart"
	"github.com/sgostarter/libringchart/segment"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"
)

var _ ringchart.Storage = (*YAMLStorage)(nil)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestYAMLStorage(t *testing.T) {
	ctx := context.Background()
	s := NewYAMLStorage(utRoot)

	_, err := s.Load(ctx, "chart1")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	points := []segment.DataPoint{{Value: 4, Label: "first"}, {Value: 5}, {Value: 10, Label: "third"}}

	err = s.Save(ctx, "chart1", points)
	assert.Nil(t, err)

	ds, err := NewYAMLStorage(utRoot).Load(ctx, "chart1")
	assert.Nil(t, err)
	assert.EqualValues(t, points, ds)

	err = s.Save(ctx, "chart1", nil)
	assert.Nil(t, err)

	ds, err = s.Load(ctx, "chart1")
	assert.Nil(t, err)
	assert.Empty(t, ds)

	assert.Nil(t, s.Del(ctx, "chart1"))
	assert.Nil(t, s.Del(ctx, "chart1"))

	_, err = s.Load(ctx, "chart1")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestYAMLStorageRejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	s := NewYAMLStorage(utRoot)

	assert.Nil(t, s.Save(ctx, "b", []segment.DataPoint{{Value: 1}}))

	for _, key := range []string{"a/b", "../b", `a\b`, "", ".", ".."} {
		err := s.Save(ctx, key, []segment.DataPoint{{Value: 2}})
		assert.True(t, errors.Is(err, ErrBadKey), key)

		_, err = s.Load(ctx, key)
		assert.True(t, errors.Is(err, ErrBadKey), key)

		assert.True(t, errors.Is(s.Del(ctx, key), ErrBadKey), key)
	}

	ds, err := s.Load(ctx, "b")
	assert.Nil(t, err)
	assert.EqualValues(t, []segment.DataPoint{{Value: 1}}, ds)

	_, err = os.Stat(filepath.Join(filepath.Dir(utRoot), "b.yaml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
