// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"github.com/shiroemons/go-t9decode/internal/t9dec/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files   map[string][]byte
	Dirs    map[string]bool
	Written map[string]*bytes.Buffer
	Error   error
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:   make(map[string][]byte),
		Dirs:    make(map[string]bool),
		Written: make(map[string]*bytes.Buffer),
	}
}

// FileExists はファイルまたはディレクトリが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	if _, exists := fs.Files[filename]; exists {
		return true
	}
	return fs.Dirs[filename]
}

// Stat はファイル情報を取得します
func (fs *MockFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if !fs.FileExists(name) {
		return nil, errors.New("file not found")
	}
	return &mockFileInfo{name: filepath.Base(name), isDir: fs.Dirs[name]}, nil
}

// Open はファイルを読み込み用に開きます
func (fs *MockFileSystem) Open(filename string) (io.ReadCloser, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Create はファイルを作成します。書き込まれた内容は Written に保持されます。
func (fs *MockFileSystem) Create(filename string) (io.WriteCloser, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	buf := &bytes.Buffer{}
	fs.Written[filename] = buf
	return nopWriteCloser{buf}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type mockFileInfo struct {
	name  string
	isDir bool
}

func (fi *mockFileInfo) Name() string { return fi.name }
func (fi *mockFileInfo) IsDir() bool { return fi.isDir }
