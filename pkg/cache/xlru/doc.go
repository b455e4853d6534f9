// Package xlru 提供固定容量、按访问新近度淘汰的进程内键值缓存。
//
// xlru 自己维护索引与新近度链表，不封装第三方缓存库：
// 条目存放在单个可增长的竞技场切片中，链表与哈希索引只持有
// 竞技场下标句柄，没有任何节点间的直接指针。
//
// # 核心特性
//
//   - 泛型支持：支持任意 comparable 的键类型和任意值类型
//   - 严格新近度淘汰：缓存满时淘汰最久未访问的条目（真 LRU，无访问频次统计）
//   - O(1) 操作：查找、写入、删除、淘汰都是均摊常数时间
//   - 深拷贝：Clone 产出顺序、容量一致且完全独立的副本
//   - 可选观测：WithObserver 挂接 OTel 计数器统计命中/未命中/写入/淘汰
//
// # 配置
//
// New 只有一个必需参数 capacity；小于 3 时静默提升为 3。
// 可选配置通过 Option 函数提供：
//   - WithOnEvicted：容量淘汰时的同步回调
//   - WithObserver：统计观测器
//
// # 并发模型
//
// Cache 不是并发安全的，内部没有锁、原子操作或任何同步设施。
// 单 goroutine 使用无需额外处理；跨 goroutine 共享时必须由调用方
// 用一把锁串行化对整个缓存的访问。所有操作同步完成、无阻塞点、
// 无 I/O，因此不接受 context，也没有超时与取消概念。
//
// # 已知限制
//
//   - Put 对已是最近使用的键不更新值：键命中链表头部时 Put 直接返回，
//     与非头部条目的更新路径不对称。这是沿袭下来的历史行为，
//     依赖它的调用方存在，因此未作修正；需要强制覆盖时先 Remove 再 Put
//   - 无 TTL：条目只会因容量淘汰、Remove 或 Clear 消失
//   - Clear 不触发 OnEvicted 回调（Clear 是重置，不是淘汰）
//   - Validate 遍历整个链表，只用于测试与调试，不要放在热路径上
//
// # 注意事项
//
//   - PutOrRemove 的 nil 值表示删除，是为兼容「空值即删除」用法保留的
//     便捷入口；常规代码应直接使用 Put 与 Remove
//   - 淘汰回调在插入新条目之前同步执行，回调里可以读缓存但严禁写
//   - Keys 每次分配新切片，顺序为最新到最旧
package xlru
