// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xcsv: CSV 行切分、字段引用与 encoding/csv 的薄封装
//   - xmsg: 本地化消息包，键缺失降级为占位符，支持 locale 回退链
//   - xversion: 版本信息解析、比较与展示
//
// 设计原则：
//   - 每个子包独立可用，不互相依赖
//   - 错误带包名前缀的哨兵值，便于 errors.Is 判断
//   - 跨平台兼容
package util
