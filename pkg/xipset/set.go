package xipset

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/xaddr"
	"github.com/omeyang/ipkit/pkg/xiplist"
)

// Set 是单 IP 与 CIDR 网段的有序集合，支持成员判断与文本再生。
//
// Set 构造后不可变：条目序列、元数据与索引都在构造时定形，之后只读。
// 因此任意多个 goroutine 可以并发调用 Contains/Entries/Generate，无需加锁。
//
// 设计决策: 条目与索引双轨保存。条目按插入顺序保留原始文本（允许重复，
// 不做去重），供 [Set.Generate] 逐字回放；同时全部条目在构造时编入
// [*netipx.IPSet] 索引，[Set.Contains] 走 O(log n) 查询。两者语义一致：
// 网段按掩码后的网络块入索引，与逐条掩码比对的结果完全相同。
type Set struct {
	opts    Opts
	entries []xaddr.Entry
	index   *netipx.IPSet
}

// New 从条目字符串序列构造 Set。
// 每个条目经 [xaddr.Parse] 严格校验；任何一条失败都返回
// [ErrInvalidEntry]（附行号与原文），不产生部分集合。
func New(lines []string, opts Opts) (*Set, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	entries := make([]xaddr.Entry, 0, len(lines))
	var b netipx.IPSetBuilder
	for i, line := range lines {
		e, err := xaddr.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %v", ErrInvalidEntry, i+1, line, err)
		}
		entries = append(entries, e)
		if e.IsCIDRRange() {
			p, err := e.Network()
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d %q: %v", ErrInvalidEntry, i+1, line, err)
			}
			b.AddPrefix(p)
		} else {
			b.Add(e.Addr())
		}
	}

	index, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("xipset: build index: %w", err)
	}
	return &Set{opts: opts, entries: entries, index: index}, nil
}

// FromBlob 从换行分隔的列表文本构造 Set。
// 文本经 [xiplist.Split] 拆分（跳过空行与注释行）后走 [New] 的逐条校验。
// 与 [Set.Generate] 构成往返：FromBlob(s.Generate()) 的条目序列等于 s 的。
func FromBlob(blob string, opts Opts) (*Set, error) {
	return New(xiplist.Split(blob), opts)
}

// Entries 返回每个条目的原始文本，保持插入顺序。
// 返回的是快照副本，调用方修改不影响 Set。
func (s *Set) Entries() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.String()
	}
	return out
}

// Len 返回条目数量（重复条目按多条计）。
func (s *Set) Len() int {
	return len(s.entries)
}

// Opts 返回构造时附带的元数据。
func (s *Set) Opts() Opts {
	return s.opts
}

// Contains 报告 ip 是否被集合中的任一条目包含：
// 裸地址条目要求地址相同，网段条目按其前缀掩码判断。
// ip 解析失败返回 false 而非错误。
func (s *Set) Contains(ip string) bool {
	e, err := xaddr.Parse(ip)
	if err != nil {
		return false
	}
	return s.index.Contains(e.Addr())
}

// Generate 将条目序列化回换行分隔的文本：每条原文一行，保持插入顺序，
// 末尾带换行。输出不含注释与空行，可直接被 [FromBlob] 重新读入。
func (s *Set) Generate() string {
	if len(s.entries) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, e := range s.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fingerprint 返回 [Set.Generate] 输出的 xxhash 摘要。
// 用于判断一次上游刷新是否真的带来了内容变化：条目文本或顺序改变
// 则指纹改变，元数据变化不影响指纹。
func (s *Set) Fingerprint() uint64 {
	return xxhash.Sum64String(s.Generate())
}
