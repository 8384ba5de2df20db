package yamlstorage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libringchart/segment"
	"gopkg.in/yaml.v3"
)

// NewYAMLStorage keeps one yaml file per key under root.
func NewYAMLStorage(root string) *YAMLStorage {
	return &YAMLStorage{
		root: root,
	}
}

type YAMLStorage struct {
	root string
}

// fileNameByKey maps a key to one file directly under root. Keys that
// name a path are rejected so two keys never share a file.
func (stg *YAMLStorage) fileNameByKey(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadKey, key)
	}

	return filepath.Join(stg.root, key+".yaml"), nil
}

func (stg *YAMLStorage) Load(_ context.Context, key string) (ds []segment.DataPoint, err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	d, err := os.ReadFile(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = yaml.Unmarshal(d, &ds)

	return
}

func (stg *YAMLStorage) Save(_ context.Context, key string, ds []segment.DataPoint) (err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	err = pathutils.MustDirExists(stg.root)
	if err != nil {
		return
	}

	if ds == nil {
		ds = []segment.DataPoint{}
	}

	d, err := yaml.Marshal(ds)
	if err != nil {
		return
	}

	err = os.WriteFile(fileName, d, 0600)

	return
}

func (stg *YAMLStorage) Del(_ context.Context, key string) error {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return err
	}

	err = os.Remove(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
