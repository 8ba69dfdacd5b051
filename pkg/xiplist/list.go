package xiplist

import "strings"

// 行级注释标记。两者都是 ipset 文本的常见约定。
const (
	// MarkerHash 是 '#' 注释标记。
	MarkerHash = '#'
	// MarkerSemicolon 是 ';' 注释标记。
	MarkerSemicolon = ';'
)

// Split 将换行分隔的 IP 列表文本拆分为独立的条目字符串。
// 每行先修剪首尾空白，空行和注释行被跳过，其余行原样输出。
//
// Split 不校验 IP 语法——那是 xaddr 包的职责，由 xipset 在构造时逐条调用。
// 这里只负责把外部列表文件的文本形态还原为条目序列。
//
// 接受 "\n" 和 "\r\n" 两种行尾。结果顺序与输入行序一致；
// 没有有效条目时返回 nil。
func Split(blob string) []string {
	if blob == "" {
		return nil
	}
	var entries []string
	for line := range strings.Lines(blob) {
		line = strings.TrimSpace(line)
		if line == "" || IsComment(line) {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// IsComment 报告已修剪的行是否为注释行（以 '#' 或 ';' 起始）。
// 空行不是注释行。
func IsComment(line string) bool {
	return len(line) > 0 && (line[0] == MarkerHash || line[0] == MarkerSemicolon)
}
