package xmsg

import (
	"fmt"
	"io/fs"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义消息文件格式。
type Format string

// 支持的消息文件格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// delim 消息键的层级分隔符。
const delim = "."

// Bundle 是一组按键查找的本地化消息。
//
// 查找永远不会失败：键缺失时返回 "!key!" 形式的占位符，
// 让界面上直接可见缺了哪条文案，而不是让调用方处理错误。
type Bundle struct {
	locale string
	k      *koanf.Koanf
}

// New 从字节数据创建消息包，需要显式指定格式。
// locale 仅作标识用途，可以为空。
func New(locale string, data []byte, format Format) (*Bundle, error) {
	if !isValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	k := koanf.New(delim)
	// 空数据创建空消息包，所有查找都会得到占位符
	if len(data) > 0 {
		if err := loadInto(k, data, format); err != nil {
			return nil, err
		}
	}
	return &Bundle{locale: locale, k: k}, nil
}

func isValidFormat(format Format) bool {
	return format == FormatYAML || format == FormatJSON
}

// NewFromFS 按 locale 回退链从文件系统加载消息包。
//
// 以 baseName="messages"、locale="zh-CN" 为例，依次加载并合并
// messages.<ext>、messages_zh.<ext>、messages_zh_CN.<ext>，
// 后加载的文件覆盖先加载的同名键；每一层按 .yaml、.yml、.json 的顺序探测。
// 一个文件都找不到时返回 ErrBundleNotFound。
func NewFromFS(fsys fs.FS, baseName, locale string) (*Bundle, error) {
	if baseName == "" {
		return nil, ErrEmptyBaseName
	}

	k := koanf.New(delim)
	loaded := 0
	for _, name := range bundleNames(baseName, locale) {
		data, format, ok := probe(fsys, name)
		if !ok {
			continue
		}
		if err := loadInto(k, data, format); err != nil {
			return nil, fmt.Errorf("%w: %s", err, name)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w: base name %q, locale %q", ErrBundleNotFound, baseName, locale)
	}
	return &Bundle{locale: locale, k: k}, nil
}

// Locale 返回创建时指定的 locale 标识。
func (b *Bundle) Locale() string {
	return b.locale
}

// Has 检查消息键是否存在。
func (b *Bundle) Has(key string) bool {
	return b.k.Exists(key)
}

// Get 返回键对应的消息文本。
// 键不存在时返回 "!key!" 占位符，从不报错。
func (b *Bundle) Get(key string) string {
	if !b.k.Exists(key) {
		return placeholder(key)
	}
	return b.k.String(key)
}

// Format 返回键对应的消息文本并套用 fmt.Sprintf 格式化参数。
// 键不存在或动词与参数不匹配时均返回 "!key!" 占位符，
// 不把 Go 的格式化错误标记透给调用方。
func (b *Bundle) Format(key string, args ...any) string {
	if !b.k.Exists(key) {
		return placeholder(key)
	}
	msg := b.k.String(key)
	if len(args) == 0 {
		return msg
	}
	out, ok := sprintf(msg, args...)
	if !ok {
		return placeholder(key)
	}
	return out
}

// errorFormatMaskKey 错误消息的格式模板键，两个参数依次是错误编号前缀和消息正文。
const errorFormatMaskKey = "messutil.error_format_mask"

// defaultErrorMask 消息包未提供模板时使用的默认错误格式。
const defaultErrorMask = "%s - %s"

// ErrorString 返回带错误编号前缀的格式化错误消息。
//
// 键按 "<模块>.ERROR_<编号>_<描述>" 约定命名时，前缀截断到编号为止：
// 键 "lru.ERROR_0002_KEY_MISSING" 对应的输出形如 "lru.ERROR_0002 - <消息正文>"。
// 格式模板取自消息包的 messutil.error_format_mask 键，缺失时使用 "%s - %s"。
func (b *Bundle) ErrorString(key string, args ...any) string {
	return b.formatError(key, b.Format(key, args...))
}

func (b *Bundle) formatError(key, msg string) string {
	trunc := key
	if marker := strings.Index(key, ".ERROR_"); marker >= 0 {
		end := marker + len(".ERROR_0000")
		if end > len(key) {
			end = len(key)
		}
		trunc = key[:end]
	}

	mask := defaultErrorMask
	if b.k.Exists(errorFormatMaskKey) {
		mask = b.k.String(errorFormatMaskKey)
	}
	out, ok := sprintf(mask, trunc, msg)
	if !ok {
		return "!" + errorFormatMaskKey + ":" + key + "!"
	}
	return out
}

// Keys 返回全部消息键（扁平化后的完整路径），顺序不保证。
func (b *Bundle) Keys() []string {
	return b.k.Keys()
}

func placeholder(key string) string {
	return "!" + key + "!"
}

// sprintf 执行 fmt.Sprintf 并报告格式化是否完全成功。
// 动词与参数的类型或数量不匹配时，Go 会在输出中留下 "%!" 错误标记，
// 借此判定失败；代价是消息文本无法输出字面 "%!" 序列。
func sprintf(format string, args ...any) (string, bool) {
	out := fmt.Sprintf(format, args...)
	if strings.Contains(out, "%!") {
		return "", false
	}
	return out, true
}

// bundleNames 生成 locale 回退链上的文件基础名，通用在前、具体在后。
// locale 支持 "zh"、"zh-CN"、"zh_CN" 三种写法。
func bundleNames(baseName, locale string) []string {
	names := []string{baseName}
	if locale == "" {
		return names
	}
	parts := strings.Split(strings.ReplaceAll(locale, "-", "_"), "_")
	if parts[0] != "" {
		names = append(names, baseName+"_"+parts[0])
	}
	if len(parts) > 1 && parts[1] != "" {
		names = append(names, baseName+"_"+parts[0]+"_"+parts[1])
	}
	return names
}

// probe 依次尝试各扩展名，返回第一个存在的文件内容及其格式。
func probe(fsys fs.FS, name string) ([]byte, Format, bool) {
	candidates := []struct {
		ext    string
		format Format
	}{
		{".yaml", FormatYAML},
		{".yml", FormatYAML},
		{".json", FormatJSON},
	}
	for _, c := range candidates {
		data, err := fs.ReadFile(fsys, name+c.ext)
		if err == nil {
			return data, c.format, true
		}
	}
	return nil, "", false
}

// loadInto 把一份消息数据合并进 koanf 实例，空数据直接跳过。
func loadInto(k *koanf.Koanf, data []byte, format Format) error {
	if len(data) == 0 {
		return nil
	}
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = kyaml.Parser()
	case FormatJSON:
		parser = kjson.Parser()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
