package xcsv

import "strings"

// Tokenizer 把单行文本按分隔符切分为字段，支持引用与双写转义。
// 用法与 bufio.Scanner 类似：
//
//	tok := xcsv.NewTokenizer(`a,"b,c",d`)
//	for tok.Scan() {
//		fmt.Println(tok.Field())
//	}
//	if err := tok.Err(); err != nil { ... }
type Tokenizer struct {
	line    string
	pos     int
	field   string
	err     error
	pending bool // 刚消费过分隔符，后面还欠一个字段（可能为空）
	opts    *options
}

// NewTokenizer 创建针对一行文本的切分器。
func NewTokenizer(line string, opts ...Option) *Tokenizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Tokenizer{line: line, opts: o}
}

// Scan 推进到下一个字段，没有更多字段或出错时返回 false。
// 空行产出零个字段；行尾的分隔符后面跟一个空字段。
func (t *Tokenizer) Scan() bool {
	if t.err != nil {
		return false
	}
	if t.pos >= len(t.line) {
		if t.pending {
			t.pending = false
			t.field = ""
			return true
		}
		return false
	}

	if rune(t.line[t.pos]) == t.opts.quote {
		field, err := t.quoted()
		if err != nil {
			t.err = err
			return false
		}
		t.field = field
		return true
	}
	t.field = t.bare()
	return true
}

// Field 返回最近一次 Scan 产出的字段。
func (t *Tokenizer) Field() string {
	return t.field
}

// Err 返回切分过程中遇到的错误，正常结束时为 nil。
func (t *Tokenizer) Err() error {
	return t.err
}

// All 一次性返回剩余的全部字段。
func (t *Tokenizer) All() ([]string, error) {
	var fields []string
	for t.Scan() {
		fields = append(fields, t.Field())
	}
	return fields, t.Err()
}

// bare 读取一个未引用的字段，直到分隔符或行尾；
// 停在分隔符上时消费掉它并标记还欠一个字段。
func (t *Tokenizer) bare() string {
	start := t.pos
	for t.pos < len(t.line) && rune(t.line[t.pos]) != t.opts.separator {
		t.pos++
	}
	field := t.line[start:t.pos]
	t.pending = false
	if t.pos < len(t.line) {
		t.pos++
		t.pending = true
	}
	if t.opts.trimSpace {
		field = strings.TrimSpace(field)
	}
	return field
}

// quoted 读取一个引用字段，引用字符双写表示转义。
// 闭合引号之后、分隔符之前的残余内容按字面量并入字段（宽松处理）。
func (t *Tokenizer) quoted() (string, error) {
	var sb strings.Builder
	t.pos++ // 吃掉起始引号
	for t.pos < len(t.line) {
		if rune(t.line[t.pos]) != t.opts.quote {
			sb.WriteByte(t.line[t.pos])
			t.pos++
			continue
		}
		// 引号：双写是转义，单个意味着字段结束
		if t.pos+1 < len(t.line) && rune(t.line[t.pos+1]) == t.opts.quote {
			sb.WriteRune(t.opts.quote)
			t.pos += 2
			continue
		}
		t.pos++ // 吃掉闭合引号
		sb.WriteString(t.bare())
		return sb.String(), nil
	}
	return "", ErrUnterminatedQuote
}
