package ringchart

import "errors"

var (
	ErrBadConfig = errors.New("bad config")
	ErrNoStorage = errors.New("no storage")
)
