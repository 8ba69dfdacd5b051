// Package xipset 提供有序、可文本序列化的 IP 集合。
//
// 一个 [Set] 由若干单 IP / CIDR 条目（xaddr 解析）和一份描述性元数据
// [Opts] 组成，支持高效成员判断（go4.org/netipx 索引）与逐字文本再生。
//
// # 核心功能
//
//   - set.go: [New] / [FromBlob] 构造，[Set.Contains]、[Set.Entries]、
//     [Set.Generate]、[Set.Fingerprint]
//   - opts.go: 元数据记录 [Opts] 与更新频率枚举 [UpdateFrequency]
//   - load.go: [FromConfig] / [OptsFromBytes] 从 YAML/JSON 文档装载
//
// # 快速示例
//
// 从条目列表构造并查询：
//
//	s, err := xipset.New([]string{"1.1.1.1", "2.2.2.2/16"}, xipset.Opts{})
//	if err != nil { ... }
//	fmt.Println(s.Contains("2.2.10.10"))  // true（落入 /16）
//	fmt.Println(s.Contains("3.3.3.3"))    // false
//
// 从列表文本构造（注释与空行被跳过）：
//
//	s, err := xipset.FromBlob("# edge blocklist\n10.0.0.0/8\n1.2.3.4\n", xipset.Opts{Name: "edge"})
//
// 文本往返：
//
//	blob := s.Generate()
//	s2, _ := xipset.FromBlob(blob, s.Opts())
//	// s2.Entries() 与 s.Entries() 逐项相同
//
// # 设计决策
//
//   - 构造失败是整体的：任何一条源数据解析失败，不产生部分集合。
//     批量数据里混入一条坏行通常意味着上游格式变了，静默跳过会把
//     残缺的规则集当成完整的用。
//   - 条目有序且允许重复。序列化输出必须逐字还原输入条目（含顺序），
//     去重和归并是索引的内部优化，不改变对外的文本形态。
//   - 元数据与匹配完全隔离：[Opts] 任何字段都不影响 Contains 的结果。
//   - [Set.Contains] 对无法解析的参数返回 false 而非错误，与
//     xaddr.Entry.Contains 的降级约定一致。
//   - 持久化编排不在本包：调用方用 [Set.Generate] 取文本交给存储层
//     （如 xstore），读回后用 [FromBlob] 重建。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xipset.New([]string{"bad line"}, xipset.Opts{})
//	if errors.Is(err, xipset.ErrInvalidEntry) {
//	    // 源数据损坏
//	}
//
// # 并发安全
//
// Set 构造后不可变，读操作可并发；不提供构造后的修改操作，
// 更新即整体替换为新 Set。
package xipset
