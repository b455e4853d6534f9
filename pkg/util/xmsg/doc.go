// Package xmsg 提供简化的本地化消息访问。
//
// Bundle 从 JSON 或 YAML 数据加载扁平的键值消息，查找路径上的一切
// 异常都被吞掉：键不存在、格式化参数不匹配都只会得到占位符或
// 原样文本，绝不会让一条缺失的文案打断业务流程。
//
// # 核心特性
//
//   - 键缺失或格式化失败均降级为 "!key!" 占位符，问题在界面上直接可见
//   - locale 回退链：messages → messages_zh → messages_zh_CN 逐层覆盖
//   - ErrorString 按 "<模块>.ERROR_<编号>_<描述>" 约定输出带编号前缀的错误消息
//   - 基于 koanf 解析，支持层级键（如 "cache.eviction.notice"）
//   - 支持 embed.FS 等任何 fs.FS 实现
//
// # 注意事项
//
//   - Format 使用 fmt.Sprintf 语义，动词与参数不匹配时整条消息退化为占位符，
//     消息文本因此无法输出字面 "%!" 序列
//   - Bundle 加载后只读，可安全地被多个 goroutine 并发读取
package xmsg
