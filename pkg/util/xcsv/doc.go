// Package xcsv 提供 CSV 行切分、字段引用以及 encoding/csv 的薄封装。
//
// 三块能力可独立使用：
//
//   - Tokenizer：对单行文本做字段切分，支持引用与双写转义，
//     适合处理不成篇的零散行
//   - Quote / NeedsQuoting：为拼接输出准备安全的字段形式
//   - Reader / Writer：针对成篇数据的 encoding/csv 封装，
//     统一分隔符选项与 "xcsv:" 前缀的错误包装
//
// # 注意事项
//
//   - Tokenizer 按字节扫描，分隔符与引用字符需为 ASCII
//   - Tokenizer 对闭合引号后的残余内容宽松处理（按字面量并入字段），
//     Reader 则沿用 encoding/csv 的严格语义
//   - Writer 带缓冲，结束时必须调用 Flush
package xcsv
