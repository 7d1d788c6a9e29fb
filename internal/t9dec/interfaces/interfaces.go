// Package interfaces はt9decコマンドで使用するインターフェースを定義します
package interfaces

import (
	"io"

	"github.com/shiroemons/go-t9decode/internal/t9dec/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	Stat(name string) (FileInfo, error)
	Open(filename string) (io.ReadCloser, error)
	Create(filename string) (io.WriteCloser, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	IsDir() bool
}

// LineDecoder は1行の打鍵列を変換するインターフェース
type LineDecoder interface {
	DecodeLine(number int, input string) (models.DecodedLine, error)
}
