package xversion

import "errors"

var (
	// ErrEmptyVersion 表示版本字符串为空。
	ErrEmptyVersion = errors.New("xversion: empty version string")

	// ErrMalformedVersion 表示版本字符串无法解析。
	ErrMalformedVersion = errors.New("xversion: malformed version string")
)
