// Package xstore 提供面向文件的窄键值存储。
//
// 这是 IP 集合持久化的外部协作层：键是受限文件名，值是字节串。
// 典型用法是把 xipset.Set.Generate 的文本存入文件，读回后用
// xipset.FromBlob 重建集合；编排（何时刷新、存哪些）始终在调用方手里。
//
//	store, err := xstore.Open("/var/lib/ipkit")
//	if err != nil { ... }
//	if err := store.Save("edge.list", []byte(set.Generate())); err != nil { ... }
//
//	data, err := store.Read("edge.list")
//	if err != nil { ... }
//	set, err := xipset.FromBlob(string(data), opts)
//
// # 设计决策
//
//   - 显式句柄而非进程级 init：[Open] 返回 [FileStore]，不同目录的
//     多个存储可以共存，不引入任何全局状态。
//   - 文件名被约束在存储目录内：拒绝绝对路径（含 Windows 盘符与 UNC
//     形式）、".." 路径段、目录形态的名字和空字节。穿越检测按独立
//     路径段精确匹配，不误伤 ".." 开头的合法文件名。
//   - 检查与实际读写之间存在 TOCTOU 窗口，本包面向可信目录下的
//     路径构建，不承诺对抗性环境下的原子安全访问。
//
// # 错误处理
//
// 名字校验错误用包内预定义变量（[ErrInvalidName]、[ErrNameEscapes] 等）
// 经 errors.Is 判断；I/O 错误包装底层 os 错误，errors.Is(err, os.ErrNotExist) 依然可用。
package xstore
