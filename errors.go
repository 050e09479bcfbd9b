package diffuse

import "errors"

var (
	ErrEmptyImage = errors.New("diffuse: empty image")
	ErrBufferSize = errors.New("diffuse: buffer size mismatch")
)
