package xaddr

import "errors"

var (
	// ErrInvalidAddress 表示文本无法解析为 IPv4/IPv6 地址或 CIDR 字面量。
	ErrInvalidAddress = errors.New("xaddr: invalid IP address")

	// ErrMissingPrefix 表示对裸地址计算网络时未提供前缀长度。
	ErrMissingPrefix = errors.New("xaddr: prefix length required")

	// ErrUnsupportedFamily 表示该操作不适用于当前地址族（如对 IPv6 请求有类掩码）。
	ErrUnsupportedFamily = errors.New("xaddr: operation not supported for address family")
)
