package xversion

import (
	"fmt"
	"strconv"
	"strings"
)

// devMarker 开发版标识。开发版没有可比的数字版本号，排序时视为最新。
const devMarker = "TRUNK"

// Info 描述一个组件的版本信息。
type Info struct {
	// ProductID 组件的内部标识，如 "cachekit"。
	ProductID string

	// Title 对外展示名称，为空时沿用 ProductID。
	Title string

	// Major 主版本号。
	Major int

	// Minor 次版本号。
	Minor int

	// Milestone 里程碑号（第三段数字）。
	Milestone int

	// Candidate 预发布标记，如 "RC1"；为空表示正式发布。
	Candidate string

	// Build 构建号元数据，不参与版本比较。
	Build string

	// Development 标记开发版（TRUNK/SNAPSHOT/devel 构建）。
	// 开发版的数字字段无意义，比较时永远排在最新。
	Development bool
}

// Parse 解析 "major[.minor[.milestone]][-candidate][+build]" 形式的版本字符串。
// 允许 "v" 前缀；缺失的数字段默认为 0；
// "TRUNK"、"SNAPSHOT" 或 "(devel)" 开头的字符串解析为开发版。
func Parse(s string) (Info, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Info{}, ErrEmptyVersion
	}

	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, devMarker) || strings.HasPrefix(upper, "SNAPSHOT") || strings.HasPrefix(s, "(devel)") {
		return Info{Development: true}, nil
	}

	s = strings.TrimPrefix(s, "v")

	var info Info
	if at := strings.IndexByte(s, '+'); at >= 0 {
		info.Build = s[at+1:]
		s = s[:at]
	}
	if at := strings.IndexByte(s, '-'); at >= 0 {
		info.Candidate = s[at+1:]
		s = s[:at]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Info{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	nums := [3]int{}
	for i, p := range parts {
		if p == "" {
			return Info{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Info{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
		}
		nums[i] = n
	}
	info.Major, info.Minor, info.Milestone = nums[0], nums[1], nums[2]
	return info, nil
}

// String 组装规范形式的版本字符串。
// 开发版固定输出 "TRUNK-SNAPSHOT"。
func (i Info) String() string {
	if i.Development {
		return devMarker + "-SNAPSHOT"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", i.Major, i.Minor, i.Milestone)
	if i.Candidate != "" {
		sb.WriteByte('-')
		sb.WriteString(i.Candidate)
	}
	if i.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(i.Build)
	}
	return sb.String()
}

// DisplayName 返回 "Title version" 形式的展示名，Title 为空时退回 ProductID。
func (i Info) DisplayName() string {
	name := i.Title
	if name == "" {
		name = i.ProductID
	}
	if name == "" {
		return i.String()
	}
	return name + " " + i.String()
}

// Compare 按版本新旧比较 a 与 b：a 更旧返回负数，相同返回 0，更新返回正数。
// 规则：开发版永远最新；数字段逐段比较；数字相同时正式版新于带
// Candidate 标记的预发布版，两个预发布版按标记字典序比较；Build 不参与比较。
func Compare(a, b Info) int {
	switch {
	case a.Development && b.Development:
		return 0
	case a.Development:
		return 1
	case b.Development:
		return -1
	}

	if c := a.Major - b.Major; c != 0 {
		return c
	}
	if c := a.Minor - b.Minor; c != 0 {
		return c
	}
	if c := a.Milestone - b.Milestone; c != 0 {
		return c
	}

	switch {
	case a.Candidate == b.Candidate:
		return 0
	case a.Candidate == "":
		return 1
	case b.Candidate == "":
		return -1
	default:
		return strings.Compare(a.Candidate, b.Candidate)
	}
}
