package xcsv

import "strings"

// NeedsQuoting 判断字段原样写出是否会破坏行结构：
// 含分隔符、引用字符、换行或首尾空白的字段需要引用。
func NeedsQuoting(field string, opts ...Option) bool {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if field == "" {
		return false
	}
	if strings.ContainsRune(field, o.separator) ||
		strings.ContainsRune(field, o.quote) ||
		strings.ContainsAny(field, "\r\n") {
		return true
	}
	return field[0] == ' ' || field[len(field)-1] == ' '
}

// Quote 返回可安全写入一行的字段形式：
// 需要引用时包上引用字符并把内部引号双写，否则原样返回。
func Quote(field string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if !NeedsQuoting(field, opts...) {
		return field
	}
	q := string(o.quote)
	return q + strings.ReplaceAll(field, q, q+q) + q
}
