package yamlstorage

import "errors"

var ErrBadKey = errors.New("bad key")
