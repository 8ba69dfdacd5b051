package main

import (
	"context"
	"fmt"
	"io"
	"math/bits"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/xaddr"
	"github.com/omeyang/ipkit/pkg/xipset"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示调用方参数错误，统一映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createClassifyCommand(),
		createNetCommand(),
		createCheckCommand(),
		createFmtCommand(),
		createMetaCommand(),
	}
}

// createParseCommand 创建 parse 子命令。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析地址/网段字面量",
		ArgsUsage: "<literal>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdParse(os.Stdout, cmd.Args().Slice())
		},
	}
}

// createClassifyCommand 创建 classify 子命令。
func createClassifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Aliases:   []string{"c"},
		Usage:     "输出地址的分类标签",
		ArgsUsage: "<addr>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdClassify(os.Stdout, cmd.Args().Slice())
		},
	}
}

// createNetCommand 创建 net 子命令。
func createNetCommand() *cli.Command {
	return &cli.Command{
		Name:      "net",
		Aliases:   []string{"n"},
		Usage:     "输出网络前缀",
		ArgsUsage: "<literal>...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bits",
				Aliases: []string{"b"},
				Usage:   "显式前缀长度（覆盖字面量自带的 /bits）",
				Value:   -1,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdNet(os.Stdout, cmd.Int("bits"), cmd.Args().Slice())
		},
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "检查地址是否命中集合文件",
		ArgsUsage: "<addr>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "集合文件路径",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdCheck(os.Stdout, cmd.String("file"), cmd.Args().Slice())
		},
	}
}

// createFmtCommand 创建 fmt 子命令。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:  "fmt",
		Usage: "规范化集合文件（丢弃注释与空行）",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "集合文件路径",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "原地写回，而非输出到 stdout",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdFmt(os.Stdout, cmd.String("file"), cmd.Bool("write"))
		},
	}
}

// createMetaCommand 创建 meta 子命令。
func createMetaCommand() *cli.Command {
	return &cli.Command{
		Name:  "meta",
		Usage: "加载并打印集合元数据",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "opts",
				Aliases: []string{"o"},
				Usage:   "元数据文档路径（.yaml/.yml/.json）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdMeta(os.Stdout, cmd.String("opts"))
		},
	}
}

// cmdParse 解析每个字面量并逐行输出结构。
// 任一字面量无效时仍处理剩余输入，最终返回退出码 1。
func cmdParse(out io.Writer, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "parse 命令需要至少一个地址/网段字面量"}
	}

	failed := false
	for _, arg := range args {
		entry, err := xaddr.Parse(arg)
		if err != nil {
			fmt.Fprintf(out, "%s\t无效\t%v\n", arg, err)
			failed = true
			continue
		}
		if b, ok := entry.Bits(); ok {
			fmt.Fprintf(out, "%s\t%s\t网段\t%s/%d\n", entry.String(), entry.Version(), entry.Addr(), b)
		} else {
			fmt.Fprintf(out, "%s\t%s\t单个地址\t%s\n", entry.String(), entry.Version(), entry.Addr())
		}
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// cmdClassify 输出每个地址的分类标签与全部置位标志。
func cmdClassify(out io.Writer, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "classify 命令需要至少一个地址参数"}
	}

	failed := false
	for _, arg := range args {
		entry, err := xaddr.Parse(arg)
		if err != nil {
			fmt.Fprintf(out, "%s\t无效\t%v\n", arg, err)
			failed = true
			continue
		}
		c := xaddr.Classify(entry)
		fmt.Fprintf(out, "%s\t%s\t[%s]\n", entry.String(), c, strings.Join(classificationFlags(c), ","))
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// classificationFlags 返回 c 中全部置位标志的名称，顺序固定。
func classificationFlags(c xaddr.Classification) []string {
	pairs := [...]struct {
		flag bool
		name string
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
	var names []string
	for _, p := range pairs {
		if p.flag {
			names = append(names, p.name)
		}
	}
	return names
}

// cmdNet 输出每个字面量的网络前缀。
// 前缀长度来源优先级：--bits > 字面量自带的 /bits > IPv4 类别默认掩码。
func cmdNet(out io.Writer, bitsFlag int, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "net 命令需要至少一个地址/网段字面量"}
	}

	for _, arg := range args {
		entry, err := xaddr.Parse(arg)
		if err != nil {
			return fmt.Errorf("解析 %q 失败: %w", arg, err)
		}

		prefix, err := networkPrefix(entry, bitsFlag)
		if err != nil {
			return fmt.Errorf("计算 %q 的网络前缀失败: %w", arg, err)
		}
		fmt.Fprintf(out, "%s\t%s\n", entry.String(), prefix)
	}

	return nil
}

// networkPrefix 按优先级为 entry 选择前缀长度并取网络。
func networkPrefix(entry xaddr.Entry, bitsFlag int) (netip.Prefix, error) {
	if bitsFlag >= 0 {
		return entry.NetworkBits(bitsFlag)
	}
	if entry.IsCIDRRange() {
		return entry.Network()
	}
	// 裸 IPv4 地址回退到 A/B/C 类默认掩码；IPv6 没有类别概念，直接报错。
	mask, err := entry.DefaultMask()
	if err != nil {
		return netip.Prefix{}, err
	}
	return entry.NetworkBits(maskBits(mask))
}

// maskBits 计算掩码地址中置位的前缀长度。
// 调用前必须确保 mask 来自 DefaultMask（即 IPv4 连续掩码）。
func maskBits(mask netip.Addr) int {
	b := mask.As4()
	n := 0
	for _, octet := range b {
		n += bits.OnesCount8(octet)
	}
	return n
}

// cmdCheck 检查每个地址是否命中集合文件。
// 设计决策: 未命中时返回非零退出码（通过 exitError），
// 使脚本能直接用 ipsetctl check 做准入判断。
func cmdCheck(out io.Writer, file string, args []string) error {
	if file == "" {
		return &usageError{msg: "check 命令需要 --file 指定集合文件"}
	}
	if len(args) == 0 {
		return &usageError{msg: "check 命令需要至少一个待检查的地址"}
	}

	set, err := loadSet(file)
	if err != nil {
		return err
	}

	allMatched := true
	for _, arg := range args {
		if set.Contains(arg) {
			fmt.Fprintf(out, "%s\t命中\n", arg)
		} else {
			fmt.Fprintf(out, "%s\t未命中\n", arg)
			allMatched = false
		}
	}

	if !allMatched {
		return &exitError{code: 1}
	}
	return nil
}

// cmdFmt 规范化集合文件：丢弃注释与空行，逐条校验语法后重新生成。
func cmdFmt(out io.Writer, file string, write bool) error {
	if file == "" {
		return &usageError{msg: "fmt 命令需要 --file 指定集合文件"}
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("读取集合文件失败: %w", err)
	}

	set, err := xipset.FromBlob(string(data), xipset.Opts{})
	if err != nil {
		return fmt.Errorf("集合文件校验失败: %w", err)
	}

	blob := set.Generate()
	if !write {
		fmt.Fprint(out, blob)
		return nil
	}

	if err := os.WriteFile(file, []byte(blob), 0o640); err != nil {
		return fmt.Errorf("写回集合文件失败: %w", err)
	}
	fmt.Fprintf(out, "已写入 %s（%d 条目）\n", file, set.Len())
	return nil
}

// cmdMeta 加载并打印集合元数据，空字段跳过。
func cmdMeta(out io.Writer, optsPath string) error {
	if optsPath == "" {
		return &usageError{msg: "meta 命令需要 --opts 指定元数据文档"}
	}

	format, err := formatForPath(optsPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(optsPath)
	if err != nil {
		return fmt.Errorf("读取元数据文档失败: %w", err)
	}

	opts, err := xipset.OptsFromBytes(data, format)
	if err != nil {
		return fmt.Errorf("解析元数据失败: %w", err)
	}

	printed := false
	for _, field := range [...]struct {
		label string
		value string
	}{
		{"名称", opts.Name},
		{"维护者", opts.Maintainer},
		{"来源", opts.URL},
		{"日期", opts.Date},
		{"更新频率", string(opts.UpdateReq)},
		{"版本", opts.Version},
		{"描述", opts.Description},
		{"备注", opts.Notes},
	} {
		if field.value == "" {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", field.label, field.value)
		printed = true
	}
	if !printed {
		fmt.Fprintln(out, "（无元数据）")
	}
	return nil
}

// loadSet 按扩展名加载集合文件：
// .yaml/.yml/.json 视为带元数据的集合定义文档，其余视为纯文本 IP 列表。
func loadSet(file string) (*xipset.Set, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("读取集合文件失败: %w", err)
	}

	if format, err := formatForPath(file); err == nil {
		set, err := xipset.FromConfig(data, format)
		if err != nil {
			return nil, fmt.Errorf("加载集合定义文档失败: %w", err)
		}
		return set, nil
	}

	set, err := xipset.FromBlob(string(data), xipset.Opts{})
	if err != nil {
		return nil, fmt.Errorf("加载 IP 列表失败: %w", err)
	}
	return set, nil
}

// formatForPath 按扩展名识别文档格式。
func formatForPath(path string) (xipset.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return xipset.FormatYAML, nil
	case ".json":
		return xipset.FormatJSON, nil
	default:
		return "", &usageError{msg: fmt.Sprintf("无法识别的文档格式: %s（支持 .yaml/.yml/.json）", path)}
	}
}
