package xversion

import "runtime/debug"

// 版本信息注入点（可通过 -ldflags 覆盖，例如:
//
//	go build -ldflags "-X github.com/omeyang/cachekit/pkg/util/xversion.injectedVersion=1.0.0"
//
// ）。未注入时退回模块自身的构建信息。
var (
	injectedVersion string
	injectedProduct string
)

// FromBuildInfo 返回当前二进制的版本信息。
//
// 优先使用 ldflags 注入的版本号；否则读取主模块的构建信息。
// go run / 本地构建得到的 "(devel)" 版本会被识别为开发版。
// 两者都不可用（如非 module 构建）时返回 ok=false。
func FromBuildInfo() (Info, bool) {
	if injectedVersion != "" {
		info, err := Parse(injectedVersion)
		if err != nil {
			return Info{}, false
		}
		info.ProductID = injectedProduct
		return info, true
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	v := bi.Main.Version
	if v == "" {
		// 测试二进制等场景下主模块版本为空，按开发版处理
		v = "(devel)"
	}
	info, err := Parse(v)
	if err != nil {
		return Info{}, false
	}
	info.ProductID = bi.Main.Path
	return info, true
}
