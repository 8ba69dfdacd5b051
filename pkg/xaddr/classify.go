package xaddr

import (
	"encoding/binary"
	"net/netip"
)

// 设计决策: 分类谓词定义在 Entry 上而非包级函数，因为调用方先构造后查询：
// Parse 一次，之后在同一个值上连续询问多个谓词。网段按其 base 地址分类。
// 所有谓词对无效 Entry 返回 false（不 panic、不返回 error），复杂度 O(1)。

// IsLoopback 报告 e 是否为环回地址。
// IPv4: 127.0.0.0/8；IPv6: ::1。
func (e Entry) IsLoopback() bool {
	return e.valid && e.addr.IsLoopback()
}

// IsPrivate 报告 e 是否为私有地址。
// IPv4: RFC 1918（10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16）；
// IPv6: fc00::/7 (Unique Local Addresses)。
func (e Entry) IsPrivate() bool {
	return e.valid && e.addr.IsPrivate()
}

// IsGlobalUnicast 报告 e 是否为全局单播地址，即不属于以下任何类别：
// 未指定、环回、链路本地单播、多播。
//
// 注意：RFC 1918 私有地址和 IPv6 ULA 也返回 true——它们在
// RFC 1122/4291/4632 的分类体系中仍是"全局结构的单播"，
// 与"公网可路由"是两个概念。IPv4 受限广播地址 255.255.255.255
// 返回 false（随 [netip.Addr.IsGlobalUnicast]，它额外排除广播地址）。
func (e Entry) IsGlobalUnicast() bool {
	return e.valid && e.addr.IsGlobalUnicast()
}

// IsInterfaceLocalMulticast 报告 e 是否为接口本地多播地址（ff01::/16）。
// 仅适用于 IPv6。
func (e Entry) IsInterfaceLocalMulticast() bool {
	return e.valid && e.addr.IsInterfaceLocalMulticast()
}

// IsLinkLocalMulticast 报告 e 是否为链路本地多播地址。
// IPv4: 224.0.0.0/24；IPv6: ff02::/16。
func (e Entry) IsLinkLocalMulticast() bool {
	return e.valid && e.addr.IsLinkLocalMulticast()
}

// IsLinkLocalUnicast 报告 e 是否为链路本地单播地址。
// IPv4: 169.254.0.0/16 (APIPA)；IPv6: fe80::/10。
func (e Entry) IsLinkLocalUnicast() bool {
	return e.valid && e.addr.IsLinkLocalUnicast()
}

// IsMulticast 报告 e 是否为多播地址。
// IPv4: 224.0.0.0/4；IPv6: ff00::/8。
func (e Entry) IsMulticast() bool {
	return e.valid && e.addr.IsMulticast()
}

// IsUnspecified 报告 e 是否为未指定地址（0.0.0.0 或 ::）。
func (e Entry) IsUnspecified() bool {
	return e.valid && e.addr.IsUnspecified()
}

// IsDocumentation 报告 e 是否为文档专用地址。
// IPv4: 192.0.2.0/24, 198.51.100.0/24, 203.0.113.0/24 (TEST-NET-1/2/3)；
// IPv6: 2001:db8::/32。
func (e Entry) IsDocumentation() bool {
	if !e.valid {
		return false
	}
	if e.addr.Is4() {
		v := ipv4ToUint32(e.addr)
		return inRange(v, 0xC0000200, 0xC00002FF) ||
			inRange(v, 0xC6336400, 0xC63364FF) ||
			inRange(v, 0xCB007100, 0xCB0071FF)
	}
	b := e.addr.As16()
	return [4]byte{b[0], b[1], b[2], b[3]} == [4]byte{0x20, 0x01, 0x0d, 0xb8}
}

// IsSharedAddress 报告 e 是否为共享地址空间（100.64.0.0/10, RFC 6598 CGNAT）。
// 仅适用于 IPv4。
func (e Entry) IsSharedAddress() bool {
	if !e.valid || !e.addr.Is4() {
		return false
	}
	v := ipv4ToUint32(e.addr)
	return inRange(v, 0x64400000, 0x647FFFFF)
}

// IsBenchmark 报告 e 是否为基准测试地址。
// IPv4: 198.18.0.0/15 (RFC 2544)；IPv6: 2001:2::/48 (RFC 5180)。
func (e Entry) IsBenchmark() bool {
	if !e.valid {
		return false
	}
	if e.addr.Is4() {
		return inRange(ipv4ToUint32(e.addr), 0xC6120000, 0xC613FFFF)
	}
	b := e.addr.As16()
	return [6]byte{b[0], b[1], b[2], b[3], b[4], b[5]} ==
		[6]byte{0x20, 0x01, 0x00, 0x02, 0x00, 0x00}
}

// IsReserved 报告 e 是否为保留地址（240.0.0.0/4, Class E, RFC 1112）。
// 仅适用于 IPv4。
func (e Entry) IsReserved() bool {
	if !e.valid || !e.addr.Is4() {
		return false
	}
	return ipv4ToUint32(e.addr) >= 0xF0000000
}

// Classification 包含一个 Entry 的全部分类结果。
// 标志不互斥，例如 10.0.0.1 同时满足 IsPrivate 和 IsGlobalUnicast。
type Classification struct {
	// Version 是 IP 版本（V4 或 V6）。
	Version Version

	// IsValid 表示 Entry 是否有效。
	IsValid bool

	IsLoopback                bool
	IsPrivate                 bool
	IsGlobalUnicast           bool
	IsInterfaceLocalMulticast bool
	IsLinkLocalMulticast      bool
	IsLinkLocalUnicast        bool
	IsMulticast               bool
	IsUnspecified             bool
	IsDocumentation           bool
	IsSharedAddress           bool
	IsBenchmark               bool
	IsReserved                bool
}

// Classify 一次性计算 e 的全部分类标志。
// 无效 Entry 返回零值 Classification。
func Classify(e Entry) Classification {
	if !e.valid {
		return Classification{}
	}
	return Classification{
		Version:                   e.Version(),
		IsValid:                   true,
		IsLoopback:                e.IsLoopback(),
		IsPrivate:                 e.IsPrivate(),
		IsGlobalUnicast:           e.IsGlobalUnicast(),
		IsInterfaceLocalMulticast: e.IsInterfaceLocalMulticast(),
		IsLinkLocalMulticast:      e.IsLinkLocalMulticast(),
		IsLinkLocalUnicast:        e.IsLinkLocalUnicast(),
		IsMulticast:               e.IsMulticast(),
		IsUnspecified:             e.IsUnspecified(),
		IsDocumentation:           e.IsDocumentation(),
		IsSharedAddress:           e.IsSharedAddress(),
		IsBenchmark:               e.IsBenchmark(),
		IsReserved:                e.IsReserved(),
	}
}

// String 返回分类的字符串标签。
// 按优先级返回最特殊的分类（如 loopback 优先于 global-unicast）。
func (c Classification) String() string {
	if !c.IsValid {
		return "invalid"
	}
	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsPrivate, "private"},
		{c.IsLinkLocalUnicast, "link-local-unicast"},
		{c.IsLinkLocalMulticast, "link-local-multicast"},
		{c.IsInterfaceLocalMulticast, "interface-local-multicast"},
		{c.IsDocumentation, "documentation"},
		{c.IsSharedAddress, "shared-address"},
		{c.IsBenchmark, "benchmark"},
		{c.IsReserved, "reserved"},
		{c.IsMulticast, "multicast"},
		{c.IsGlobalUnicast, "global-unicast"},
	}
	for _, l := range labels {
		if l.flag {
			return l.label
		}
	}
	// Classify 对有效 Entry 总会设置至少一个标志（IsGlobalUnicast 兜底），
	// 此分支仅在手工构造 Classification{IsValid: true} 时触达。
	return "unknown"
}

// ipv4ToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 调用前必须确保 addr.Is4() 为 true（Parse 已将 4in6 归一化为纯 IPv4）。
func ipv4ToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}

// inRange 检查 v 是否在 [lo, hi] 范围内。
func inRange(v, lo, hi uint32) bool {
	return v >= lo && v <= hi
}
