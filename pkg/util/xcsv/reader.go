package xcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Reader 是 encoding/csv 读取器的薄封装，统一选项与错误包装。
type Reader struct {
	r *csv.Reader
}

// NewReader 创建 CSV 读取器。
// 记录长度不做强制（允许各行字段数不同），注释行以 '#' 开头。
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.separator
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = o.trimSpace
	return &Reader{r: cr}
}

// Read 读取下一条记录，数据读完时返回 io.EOF。
func (r *Reader) Read() ([]string, error) {
	record, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return record, nil
}

// ReadAll 读取剩余的全部记录。
func (r *Reader) ReadAll() ([][]string, error) {
	records, err := r.r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return records, nil
}
