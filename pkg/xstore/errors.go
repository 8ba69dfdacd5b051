package xstore

import "errors"

var (
	// ErrEmptyDir 表示存储目录参数为空。
	ErrEmptyDir = errors.New("xstore: store directory is required")

	// ErrEmptyName 表示文件名参数为空。
	ErrEmptyName = errors.New("xstore: file name is required")

	// ErrInvalidName 表示文件名格式非法（绝对路径、目录形态、空字节等）。
	ErrInvalidName = errors.New("xstore: invalid file name")

	// ErrNameEscapes 表示文件名试图逃逸出存储目录（".." 路径段）。
	ErrNameEscapes = errors.New("xstore: file name escapes store directory")
)
