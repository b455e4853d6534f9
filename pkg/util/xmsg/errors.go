package xmsg

import "errors"

// 消息包加载相关错误。
// 键查找永远不会返回错误：缺失的键降级为占位符字符串。
var (
	// ErrUnsupportedFormat 表示不支持的消息文件格式。
	ErrUnsupportedFormat = errors.New("xmsg: unsupported bundle format")

	// ErrParseFailed 表示消息文件解析失败。
	ErrParseFailed = errors.New("xmsg: failed to parse bundle")

	// ErrEmptyBaseName 表示消息文件基础名为空。
	ErrEmptyBaseName = errors.New("xmsg: empty bundle base name")

	// ErrBundleNotFound 表示找不到任何匹配的消息文件。
	ErrBundleNotFound = errors.New("xmsg: no bundle file found")
)
