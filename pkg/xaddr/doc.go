// Package xaddr 提供 IP 地址与 CIDR 字面量的解析和分类。
//
// xaddr 基于 Go 标准库 [net/netip] 构建，将单个地址或 CIDR 网段解析为
// 不可变值类型 [Entry]，并在其上提供 RFC 1122/4291/4632 语义的分类谓词、
// 有类默认掩码与网络前缀计算、单网段包含判断。
//
// # 核心功能
//
//   - parse.go: [Parse] / [MustParse] 解析地址与 CIDR，[Entry] 值类型
//   - classify.go: 分类谓词（IsLoopback ~ IsReserved）与 [Classify] 汇总
//   - network.go: [Entry.DefaultMask]、[Entry.Network]、[Entry.Contains]
//   - version.go: IP 版本类型 [Version] 及 [AddrVersion]
//
// # 快速示例
//
// 解析并分类：
//
//	e, err := xaddr.Parse("10.0.0.5")
//	if err != nil { ... }
//	fmt.Println(e.IsPrivate())        // true
//	fmt.Println(e.IsGlobalUnicast())  // true（私有地址也是全局单播）
//
// CIDR 网段与包含判断：
//
//	r := xaddr.MustParse("1.1.0.0/16")
//	fmt.Println(r.Contains("1.1.5.5"))  // true
//	fmt.Println(r.Contains("1.2.0.0"))  // false
//
// 由主机地址计算网络：
//
//	e := xaddr.MustParse("1.1.1.1")
//	p, _ := e.NetworkBits(16)
//	fmt.Println(p.Addr())  // 1.1.0.0
//	fmt.Println(p)         // 1.1.0.0/16
//
// # 设计决策
//
//   - 先构造后查询：Parse 返回 (Entry, error)，失败的 Entry 依然是
//     安全的值——IsValid 为 false，谓词返回 false，派生计算返回错误。
//     调用方可以一次解析、多次询问，无需在每个谓词前重复判错。
//   - CIDR 的 base 地址按原文保留（可以是主机地址），String() 原样回放；
//     网络地址仅在 Network/NetworkBits/Contains 中按需计算。
//   - IPv4-mapped IPv6（::ffff:a.b.c.d）在解析时统一归一化为纯 IPv4，
//     保证两种写法在分类和包含判断中结果一致。
//   - 拒绝 IPv6 zone ID：zone 信息无法参与网段运算，静默丢弃会造成误判。
//   - Contains 对无法解析的参数返回 false 而非 error，这是唯一一处
//     错误降级，面向"直接做过滤判断"的调用形态。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xaddr.Parse("300.1.2.3")
//	if errors.Is(err, xaddr.ErrInvalidAddress) {
//	    // 处理无效地址
//	}
//
// # 并发安全
//
// Entry 是不可变值类型，所有方法均为只读纯函数，可在多个 goroutine
// 间自由共享，无需加锁。
package xaddr
