package xcsv

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Writer 是 encoding/csv 写入器的薄封装，统一选项与错误包装。
// 写入是带缓冲的，结束时必须调用 Flush。
type Writer struct {
	w *csv.Writer
}

// NewWriter 创建 CSV 写入器。
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cw := csv.NewWriter(w)
	cw.Comma = o.separator
	return &Writer{w: cw}
}

// Write 写入一条记录，引用规则由 encoding/csv 处理。
func (w *Writer) Write(record []string) error {
	if err := w.w.Write(record); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// WriteAll 写入多条记录并落盘。
func (w *Writer) WriteAll(records [][]string) error {
	if err := w.w.WriteAll(records); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Flush 把缓冲内容写入底层 io.Writer 并返回累计的写入错误。
func (w *Writer) Flush() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
