package xaddr

import (
	"fmt"
	"net/netip"
)

// DefaultMask 返回有效 IPv4 地址的有类（classful）默认掩码：
//   - Class A（首八位段 < 128）：255.0.0.0
//   - Class B（首八位段 < 192）：255.255.0.0
//   - Class C（首八位段 < 224）：255.255.255.0
//
// IPv6 地址、无效 Entry 以及没有有类掩码的 Class D/E 地址
// 返回 [ErrUnsupportedFamily]。
//
// 设计决策: 返回 (netip.Addr, error) 而非布尔值——"掩码值或无"
// 的语义需要 option 形态的结果，布尔签名无法承载掩码本身。
func (e Entry) DefaultMask() (netip.Addr, error) {
	if !e.valid {
		return netip.Addr{}, fmt.Errorf("%w: invalid entry", ErrUnsupportedFamily)
	}
	if !e.addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: classful mask is IPv4-only", ErrUnsupportedFamily)
	}
	b := e.addr.As4()
	switch {
	case b[0] < 128:
		return netip.AddrFrom4([4]byte{255, 0, 0, 0}), nil
	case b[0] < 192:
		return netip.AddrFrom4([4]byte{255, 255, 0, 0}), nil
	case b[0] < 224:
		return netip.AddrFrom4([4]byte{255, 255, 255, 0}), nil
	default:
		return netip.Addr{}, fmt.Errorf("%w: class D/E address has no classful mask", ErrUnsupportedFamily)
	}
}

// Network 计算 CIDR 网段的网络前缀：base 地址与自身前缀长度按位与的结果。
// 返回的 [netip.Prefix] 已做掩码归一化：Addr() 是纯网络地址，
// String() 是 "network/bits" 形式的 CIDR 文本。
//
// 裸地址没有自带前缀，返回 [ErrMissingPrefix]——请改用 [Entry.NetworkBits]
// 显式提供前缀长度。无效 Entry 返回 [ErrInvalidAddress]。
func (e Entry) Network() (netip.Prefix, error) {
	if !e.valid {
		return netip.Prefix{}, fmt.Errorf("%w: invalid entry", ErrInvalidAddress)
	}
	if !e.isRange {
		return netip.Prefix{}, fmt.Errorf("%w: bare address %q needs explicit bits", ErrMissingPrefix, e.text)
	}
	return e.addr.Prefix(e.bits)
}

// NetworkBits 以显式前缀长度计算网络前缀，对网段 Entry 覆盖其自身前缀。
// bits 超出地址族位宽（IPv4: 0..32, IPv6: 0..128）返回 [ErrInvalidAddress]。
func (e Entry) NetworkBits(bits int) (netip.Prefix, error) {
	if !e.valid {
		return netip.Prefix{}, fmt.Errorf("%w: invalid entry", ErrInvalidAddress)
	}
	p, err := e.addr.Prefix(bits)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: bits %d out of range for %s", ErrInvalidAddress, bits, e.Version())
	}
	return p, nil
}

// Contains 报告文本 s 所表示的地址是否被 e 包含：
//   - e 为裸地址：s 解析出的地址与 e 相同才为 true；
//   - e 为网段：s 的地址按 e 的前缀长度掩码后等于 e 的网络地址才为 true。
//
// s 解析失败返回 false 而非错误（按约定降级，便于直接用于过滤判断）。
// s 本身为 CIDR 时取其 base 地址参与判断。
func (e Entry) Contains(s string) bool {
	if !e.valid {
		return false
	}
	o, err := Parse(s)
	if err != nil {
		return false
	}
	if !e.isRange {
		return e.addr == o.addr
	}
	if e.addr.Is4() != o.addr.Is4() {
		return false
	}
	en, err := e.addr.Prefix(e.bits)
	if err != nil {
		return false
	}
	on, err := o.addr.Prefix(e.bits)
	if err != nil {
		return false
	}
	return en == on
}
