package xstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// 默认权限。0750/0640 保证组外用户无法读取列表内容。
const (
	dirPerm  = 0750
	filePerm = 0640
)

// Store 是面向文件的键值存储的窄接口：键是受限的文件名，值是字节串。
// 集合的持久化编排（何时存、存什么）属于调用方，本包只负责字节落盘。
type Store interface {
	// Save 原样写入 data，同名文件被整体覆盖。
	Save(name string, data []byte) error
	// Read 读取整个文件内容。
	Read(name string) ([]byte, error)
	// Remove 删除文件。文件不存在视为错误（errors.Is 与 os.ErrNotExist 可判断）。
	Remove(name string) error
}

// FileStore 把每个条目存为目录下的一个普通文件。
// 实现 [Store]。方法本身无共享可变状态，可并发使用；
// 对同一文件名的并发写由调用方协调。
type FileStore struct {
	dir string
}

// Open 打开（必要时创建）存储目录并返回句柄。
// 幂等：对已存在的目录重复调用无副作用。
//
// 设计决策: 用显式句柄替代进程级的一次性 init——存储目录是依赖，
// 不是环境。多个 FileStore 可指向不同目录共存，测试无需全局状态复位。
func Open(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, ErrEmptyDir
	}
	if strings.ContainsRune(dir, 0) {
		return nil, fmt.Errorf("%w: directory contains null byte", ErrInvalidName)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("xstore: resolve directory: %w", err)
	}
	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return nil, fmt.Errorf("xstore: create directory: %w", err)
	}
	return &FileStore{dir: abs}, nil
}

// Dir 返回存储目录的绝对路径。
func (s *FileStore) Dir() string {
	return s.dir
}

// Save 将 data 写入 name 对应的文件，已存在则整体覆盖。
func (s *FileStore) Save(name string, data []byte) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if sub := filepath.Dir(path); sub != s.dir {
		if err := os.MkdirAll(sub, dirPerm); err != nil {
			return fmt.Errorf("xstore: create subdirectory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("xstore: save %q: %w", name, err)
	}
	return nil
}

// Read 读取 name 对应文件的全部内容。
func (s *FileStore) Read(name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xstore: read %q: %w", name, err)
	}
	return data, nil
}

// Remove 删除 name 对应的文件。
func (s *FileStore) Remove(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("xstore: remove %q: %w", name, err)
	}
	return nil
}

// resolve 校验文件名并拼出存储目录内的完整路径。
//
// 文件名必须是不含路径穿越的相对名，可以带子目录段（"sets/edge.list"），
// 但任何 ".." 独立路径段、绝对路径（含 Windows 盘符与 UNC 形式）、
// 目录形态（尾随分隔符）和空字节都被拒绝。
func (s *FileStore) resolve(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: name contains null byte", ErrInvalidName)
	}
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, "\\") {
		return "", fmt.Errorf("%w: %q is a directory path", ErrInvalidName, name)
	}
	if filepath.IsAbs(name) || isWindowsAbsPath(name) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	}
	clean := filepath.Clean(name)
	if hasDotDotSegment(clean) {
		return "", fmt.Errorf("%w: %q", ErrNameEscapes, name)
	}
	joined := filepath.Join(s.dir, clean)
	// Clean 后已无 ".." 段，Join 不可能逃逸；此检查防御标准库行为变更。
	rel, err := filepath.Rel(s.dir, joined)
	if err != nil || hasDotDotSegment(rel) {
		return "", fmt.Errorf("%w: %q", ErrNameEscapes, name)
	}
	return joined, nil
}

// isWindowsAbsPath 检测 Windows 风格的绝对或驱动器相关路径。
// 非 Windows 平台上 filepath.IsAbs 不识别 "C:\..." 或 "\\server\..."，
// 需要显式检测以防止跨平台场景下的逃逸。
func isWindowsAbsPath(path string) bool {
	if len(path) >= 2 && isASCIILetter(path[0]) && path[1] == ':' {
		return true
	}
	return len(path) >= 1 && path[0] == '\\'
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// hasDotDotSegment 检测路径中是否包含 ".." 独立路径段。
// 同时将 '/' 和 '\' 视为分隔符；不误伤 ".." 开头的合法文件名（如 "..config"）。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}
