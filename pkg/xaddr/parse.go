package xaddr

import (
	"fmt"
	"net/netip"
	"strings"
)

// Entry 是已解析的 IP 字面量：单个地址或 CIDR 网段（含 '/' 的输入即网段）。
//
// Entry 为不可变值类型。零值是无效 Entry：所有分类谓词返回 false，
// 所有派生计算返回错误。构造请使用 [Parse] 或 [MustParse]。
//
// 设计决策: 原始文本与解析结果一并保存。[Entry.String] 始终返回构造时的
// 原始文本（网段的 base 可以是主机地址，不做掩码归一化），序列化按原文回放；
// 匹配计算则基于解析后的 [netip.Addr]。两者职责分离，互不干扰。
type Entry struct {
	text    string
	addr    netip.Addr
	bits    int
	isRange bool
	valid   bool
}

// Parse 将文本解析为 [Entry]。
// 接受标准点分十进制 IPv4、标准及 "::" 压缩形式的 IPv6，
// 以及两者附加 "/<bits>" 的 CIDR 形式。
//
// 拒绝：空串、首尾空白（调用方需预先修剪，批量场景见 xiplist 包）、
// 非法八位段（非数字、>255、前导零）、段数错误、前缀长度超出地址族位宽、
// 多个 "::" 压缩、IPv6 zone ID。
//
// 解析是确定性的纯函数：相同输入总是产生逐字节相同的结果，无任何副作用。
// 失败时返回的 Entry 仍可安全使用（IsValid 为 false，其余查询返回零值）。
func Parse(s string) (Entry, error) {
	if s == "" {
		return Entry{}, fmt.Errorf("%w: empty input", ErrInvalidAddress)
	}

	// 设计决策: 拒绝包含 IPv6 zone ID 的输入（如 fe80::1%eth0）。
	// 网段与集合运算会静默丢弃 zone 信息，导致后续匹配误判。
	// 在 IP 地址字符串中 '%' 仅用作 zone 分隔符，因此检查 '%' 即可。
	if strings.Contains(s, "%") {
		return Entry{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidAddress, s)
	}

	if strings.Contains(s, "/") {
		return parseCIDR(s)
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return Entry{text: s, addr: addr.Unmap(), valid: true}, nil
}

// parseCIDR 解析含 '/' 的 CIDR 字面量。
// base 地址按原样保留（可以是主机地址），不做网络地址掩码归一化。
func parseCIDR(s string) (Entry, error) {
	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	addr, bits := prefix.Addr(), prefix.Bits()

	// IPv4-mapped IPv6 统一归一化为纯 IPv4，保证与点分十进制输入
	// 的匹配结果一致。bits < 96 的前缀覆盖超出 IPv4 映射空间，拒绝。
	if addr.Is4In6() {
		if bits < 96 {
			return Entry{}, fmt.Errorf("%w: IPv4-mapped prefix needs bits >= 96: %s", ErrInvalidAddress, s)
		}
		addr, bits = addr.Unmap(), bits-96
	}

	return Entry{text: s, addr: addr, bits: bits, isRange: true, valid: true}, nil
}

// MustParse 与 [Parse] 相同，但失败时 panic。
// 适用于测试和包级常量初始化。
func MustParse(s string) Entry {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// IsValid 报告 e 是否由一次成功的解析构造。
// 零值 Entry 与解析失败的 Entry 均返回 false。
func (e Entry) IsValid() bool {
	return e.valid
}

// IsCIDRRange 报告解析的字面量是否为 CIDR 网段（输入含 '/'）。
// 无效 Entry 返回 false。
func (e Entry) IsCIDRRange() bool {
	return e.valid && e.isRange
}

// Addr 返回解析出的地址。网段返回其 base 地址（按原文解析，未掩码）。
// 无效 Entry 返回零值。
func (e Entry) Addr() netip.Addr {
	return e.addr
}

// Bits 返回网段的前缀长度。
// 裸地址和无效 Entry 返回 (0, false)。
func (e Entry) Bits() (int, bool) {
	if !e.valid || !e.isRange {
		return 0, false
	}
	return e.bits, true
}

// Version 返回 Entry 的 IP 版本。无效 Entry 返回 V0。
func (e Entry) Version() Version {
	if !e.valid {
		return V0
	}
	return AddrVersion(e.addr)
}

// String 返回构造时的原始文本。无效 Entry 返回空字符串。
func (e Entry) String() string {
	return e.text
}
