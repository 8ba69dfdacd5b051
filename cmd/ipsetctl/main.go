// ipsetctl 是 IP 集合工具链的命令行前端。
//
// 用法:
//
//	ipsetctl <命令> [命令参数]
//
// 命令:
//
//	parse <literal>...            解析地址/网段字面量并输出结构
//	classify <addr>...            输出地址的分类标签与标志位
//	net [--bits N] <literal>...   输出网络前缀（CIDR 文本）
//	check --file F <addr>...      检查地址是否命中集合文件
//	fmt --file F [--write]        规范化集合文件（丢弃注释与空行）
//	meta --opts F                 加载并打印集合元数据（YAML/JSON）
//	help                          显示帮助信息
//
// net 命令说明:
//
//	CIDR 字面量直接按其前缀长度取网络；裸地址需要 --bits 指定前缀长度，
//	裸 IPv4 地址在未指定 --bits 时回退到 A/B/C 类默认掩码。
//
// check 命令说明:
//
//	集合文件按扩展名识别：.yaml/.yml/.json 视为带元数据的集合定义文档，
//	其余视为纯文本 IP 列表（# 与 ; 开头的行为注释）。
//
// 退出码:
//
//	0: 命令执行成功（check 命令: 全部地址命中）
//	1: 命令执行失败或存在未命中/无效输入
//	2: 参数错误（缺少必需参数、未知命令等）
//
// 示例:
//
//	ipsetctl parse 10.0.0.0/8 ::1             # 解析多个字面量
//	ipsetctl classify 127.0.0.1               # 输出 loopback 分类
//	ipsetctl net --bits 16 1.2.3.4            # 输出 1.2.0.0/16
//	ipsetctl check --file edge.list 1.1.5.5   # 命中检查
//	ipsetctl fmt --file edge.list --write     # 原地规范化
//	ipsetctl meta --opts country-cn.yaml      # 打印元数据
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "ipsetctl",
		Usage:          "IP 地址解析、分类与集合命中检查工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"ipkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `ipsetctl 围绕三种对象工作：地址/网段字面量、纯文本 IP 列表、
带元数据的集合定义文档（YAML/JSON）。

字面量:
  parse               解析并输出版本、类型、地址与前缀长度
  classify            输出分类标签（loopback/private/multicast/...）
  net                 输出网络前缀
    --bits, -b        显式前缀长度（覆盖字面量自带的 /bits）

集合文件:
  check               集合命中检查（全部命中时退出码为 0）
    --file, -f        集合文件路径（必需）
  fmt                 规范化列表（丢弃注释与空行，逐条校验语法）
    --file, -f        集合文件路径（必需）
    --write, -w       原地写回，而非输出到 stdout
  meta                打印集合元数据
    --opts, -o        元数据文档路径（必需，.yaml/.yml/.json）`,
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// isCLIUsageError 判断 err 是否为 CLI 框架产生的参数解析类错误。
func isCLIUsageError(err error) bool {
	var coder cli.ExitCoder
	return errors.As(err, &coder)
}
