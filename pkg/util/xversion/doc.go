// Package xversion 提供组件版本信息的解析、比较与展示。
//
// 版本字符串形如 "major.minor.milestone[-candidate][+build]"，
// 缺失的数字段默认为 0。开发版（TRUNK/SNAPSHOT/devel 构建）没有
// 可比的数字版本号，比较时一律视为最新。
//
// # 注意事项
//
//   - Build 段是元数据，不参与 Compare
//   - 数字相同时正式版新于预发布版（1.2.3 > 1.2.3-RC1）
//   - FromBuildInfo 优先使用 ldflags 注入的版本，其次读取模块构建信息
package xversion
