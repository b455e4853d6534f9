// Package cache 提供进程内缓存相关的子包。
//
// 子包列表：
//   - xlru: 固定容量、按访问新近度淘汰的键值缓存，泛型支持、深拷贝、可选 OTel 观测
package cache
