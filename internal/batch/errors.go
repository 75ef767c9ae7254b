package batch

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrClassify      = errors.New("batch classification interrupted")
	ErrRead          = errors.New("failed to read user agents")
	ErrEncode        = errors.New("failed to encode records")
)
