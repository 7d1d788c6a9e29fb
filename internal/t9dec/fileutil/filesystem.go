package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shiroemons/go-t9decode/internal/t9dec/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Open はファイルを読み込み用に開きます
func (fs *OSFileSystem) Open(filename string) (io.ReadCloser, error) {
	return os.Open(filename)
}

// Create はファイルを作成します。出力先ディレクトリが存在しない場合は作成します。
func (fs *OSFileSystem) Create(filename string) (io.WriteCloser, error) {
	if err := fs.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}
	return os.Create(filename)
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}
