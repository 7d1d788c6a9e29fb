// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrDecodeFailure は1行以上の変換に失敗した場合のエラー
	ErrDecodeFailure = errors.New("打鍵列の変換に失敗しました")
)

// InputError は入出力関連のエラー
type InputError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError は新しいInputErrorを作成します
func NewInputError(op, path string, err error) *InputError {
	return &InputError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// LineError は行単位の変換エラー
type LineError struct {
	Line int   // 行番号 (1始まり)
	Err  error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *LineError) Error() string {
	return fmt.Sprintf("%d行目: %v", e.Line, e.Err)
}

// Unwrap は元のエラーを返します
func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError は新しいLineErrorを作成します
func NewLineError(line int, err error) *LineError {
	return &LineError{
		Line: line,
		Err:  err,
	}
}
