package xipset

import (
	"fmt"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义集合定义文档的格式。
type Format string

// 支持的文档格式。
const (
	// FormatYAML YAML 格式（推荐用于人工维护的集合定义）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// delim 是 koanf 的键路径分隔符。集合定义文档是扁平的，分隔符不会被用到，
// 但 koanf 要求非空。
const delim = "."

// OptsFromBytes 从 YAML/JSON 文档反序列化集合元数据。
// 文档中未出现的字段保持零值；未知的 update_req 取值返回 [ErrInvalidFrequency]。
//
// 本函数只消费已物化的字节——文件读取、HTTP 拉取等 I/O 属于调用方。
func OptsFromBytes(data []byte, format Format) (Opts, error) {
	k, err := loadDocument(data, format)
	if err != nil {
		return Opts{}, err
	}
	var o Opts
	if err := k.Unmarshal("", &o); err != nil {
		return Opts{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	if err := o.Validate(); err != nil {
		return Opts{}, err
	}
	return o, nil
}

// FromConfig 从一份完整的集合定义文档构造 Set。
// 文档由元数据字段（见 [Opts]）和一个 entries 字符串列表组成：
//
//	name: bogons
//	maintainer: netops
//	update_req: daily
//	entries:
//	  - 10.0.0.0/8
//	  - 192.168.1.1
//
// entries 的每一项经 [xaddr.Parse] 校验，任何一项失败整体构造失败。
func FromConfig(data []byte, format Format) (*Set, error) {
	k, err := loadDocument(data, format)
	if err != nil {
		return nil, err
	}
	var o Opts
	if err := k.Unmarshal("", &o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return New(k.Strings("entries"), o)
}

// loadDocument 将字节数据载入 koanf 实例。
func loadDocument(data []byte, format Format) (*koanf.Koanf, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	k := koanf.New(delim)
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return k, nil
}

// parserFor 返回格式对应的 koanf 解析器。
func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
