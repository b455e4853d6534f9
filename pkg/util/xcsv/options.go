package xcsv

// options 分隔与引用行为配置，Tokenizer、Reader、Writer 共用。
type options struct {
	separator rune
	quote     rune
	trimSpace bool
}

// Option 定义配置函数类型。
type Option func(*options)

func defaultOptions() *options {
	return &options{
		separator: ',',
		quote:     '"',
	}
}

// WithSeparator 设置字段分隔符，默认逗号。
// Tokenizer 按字节扫描，分隔符与引用字符需为 ASCII 字符。
func WithSeparator(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.separator = r
		}
	}
}

// WithQuote 设置引用字符，默认双引号。
// 仅 Tokenizer 与 Quote/NeedsQuoting 使用；Reader/Writer 沿用
// encoding/csv 的固定双引号语义。
func WithQuote(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.quote = r
		}
	}
}

// WithTrimSpace 启用未引用字段的首尾空白裁剪。
func WithTrimSpace() Option {
	return func(o *options) {
		o.trimSpace = true
	}
}
