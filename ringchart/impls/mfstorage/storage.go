package mfstorage

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libringchart/segment"
)

const dataFileName = "ringchart.json"

// NewMFStorage keeps every key in one json file under root, mirrored in memory.
func NewMFStorage(root string, storage stg.FileStorage) *MFStorage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	_ = pathutils.MustDirExists(root)

	return &MFStorage{
		d: mwf.NewMemWithFile[map[string][]segment.DataPoint, mwf.Serial, mwf.Lock](
			make(map[string][]segment.DataPoint), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, dataFileName), storage),
	}
}

type MFStorage struct {
	d *mwf.MemWithFile[map[string][]segment.DataPoint, mwf.Serial, mwf.Lock]
}

func (impl *MFStorage) Load(_ context.Context, key string) (ds []segment.DataPoint, err error) {
	impl.d.Read(func(m map[string][]segment.DataPoint) {
		points, ok := m[key]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		ds = append([]segment.DataPoint{}, points...)
	})

	return
}

func (impl *MFStorage) Save(_ context.Context, key string, ds []segment.DataPoint) error {
	points := append([]segment.DataPoint{}, ds...)

	return impl.d.Change(func(oldM map[string][]segment.DataPoint) (newM map[string][]segment.DataPoint, err error) {
		newM = oldM
		if newM == nil {
			newM = make(map[string][]segment.DataPoint)
		}

		newM[key] = points

		return
	})
}

func (impl *MFStorage) Del(_ context.Context, key string) error {
	return impl.d.Change(func(oldM map[string][]segment.DataPoint) (newM map[string][]segment.DataPoint, err error) {
		newM = oldM
		delete(newM, key)

		return
	})
}
