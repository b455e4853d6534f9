package xcsv

import "errors"

var (
	// ErrUnterminatedQuote 表示带引号的字段没有闭合引号。
	ErrUnterminatedQuote = errors.New("xcsv: unterminated quoted field")

	// ErrReadFailed 表示底层 CSV 读取失败。
	ErrReadFailed = errors.New("xcsv: read failed")

	// ErrWriteFailed 表示底层 CSV 写入失败。
	ErrWriteFailed = errors.New("xcsv: write failed")
)
