// Package xiplist 解析行式 IP 列表文本。
//
// IP 列表（blocklist/allowlist )的事实文本格式是：每行一个条目（单 IP 或
// CIDR），'#' 或 ';' 起始的行为注释，空行忽略。[Split] 把这样的文本拆成
// 条目字符串序列，并完成每行的空白修剪——xaddr 的解析器故意不接受空白，
// 本包是指定的预修剪层。
//
// 设计决策: 本包不做任何 IP 语法校验。拆分（文本形态）与校验（地址语义）
// 分属两层：校验失败要整体中止集合构造，必须发生在 xipset 逐条解析处，
// 而不是在这里被悄悄跳过。
package xiplist
