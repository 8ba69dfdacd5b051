package xipset

import "fmt"

// UpdateFrequency 表示集合维护者声明的更新周期。
type UpdateFrequency string

// 已知的更新频率取值。
const (
	Hourly   UpdateFrequency = "hourly"
	Daily    UpdateFrequency = "daily"
	Weekly   UpdateFrequency = "weekly"
	BiWeekly UpdateFrequency = "biweekly"
	Monthly  UpdateFrequency = "monthly"
)

// Valid 报告 f 是否为已知取值。空值视为"未声明"，也是合法的。
func (f UpdateFrequency) Valid() bool {
	switch f {
	case "", Hourly, Daily, Weekly, BiWeekly, Monthly:
		return true
	default:
		return false
	}
}

// Opts 是集合的描述性元数据。
//
// 所有字段均为纯描述：verbatim 保存、verbatim 回放，任何字段都不参与
// 解析或匹配语义。Date 和 Version 保持字符串形态，避免往返中的格式漂移。
type Opts struct {
	// Name 是集合名称。
	Name string `koanf:"name" json:"name" yaml:"name"`

	// Maintainer 是维护者。
	Maintainer string `koanf:"maintainer" json:"maintainer" yaml:"maintainer"`

	// URL 是来源地址。
	URL string `koanf:"url" json:"url" yaml:"url"`

	// Date 是创建日期，原文保存。
	Date string `koanf:"date" json:"date" yaml:"date"`

	// UpdateReq 是声明的更新频率。
	UpdateReq UpdateFrequency `koanf:"update_req" json:"update_req" yaml:"update_req"`

	// Version 是集合版本，原文保存。
	Version string `koanf:"version" json:"version" yaml:"version"`

	// Description 是描述。
	Description string `koanf:"description" json:"description" yaml:"description"`

	// Notes 是自由文本备注。
	Notes string `koanf:"notes" json:"notes" yaml:"notes"`
}

// Validate 校验元数据。目前唯一的结构化字段是 UpdateReq。
func (o Opts) Validate() error {
	if !o.UpdateReq.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, o.UpdateReq)
	}
	return nil
}
