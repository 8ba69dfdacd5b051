package xipset

import "errors"

var (
	// ErrInvalidEntry 表示来源行无法解析为 IP/CIDR 条目。
	// 构造对整个集合是致命的：不产生部分集合。
	ErrInvalidEntry = errors.New("xipset: invalid set entry")

	// ErrInvalidFrequency 表示未知的更新频率取值。
	ErrInvalidFrequency = errors.New("xipset: invalid update frequency")

	// ErrUnsupportedFormat 表示不支持的配置文档格式。
	ErrUnsupportedFormat = errors.New("xipset: unsupported config format")

	// ErrLoadFailed 表示配置文档解析或反序列化失败。
	ErrLoadFailed = errors.New("xipset: config load failed")
)
