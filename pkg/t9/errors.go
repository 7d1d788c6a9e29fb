package t9

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter は入力に使用できない文字が含まれている場合のエラー
	ErrInvalidCharacter = errors.New("t9: 無効な文字です")

	// ErrInvalidRunLength は連打数に対応する文字がない場合のエラー
	ErrInvalidRunLength = errors.New("t9: 無効な連打数です")
)

// DecodeError は変換に失敗した位置と原因を保持します
type DecodeError struct {
	Offset int64 // 入力先頭からのバイト位置
	Char   byte  // 原因となった文字 (連打数エラーの場合は連打したキー)
	Count  int   // 連打数 (連打数エラーの場合のみ)
	Err    error // ErrInvalidCharacter または ErrInvalidRunLength
}

// Error はエラーメッセージを返します
func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrInvalidRunLength) {
		return fmt.Sprintf("%v: offset %d: キー %q を %d 回", e.Err, e.Offset, e.Char, e.Count)
	}
	return fmt.Sprintf("%v: offset %d: %q", e.Err, e.Offset, e.Char)
}

// Unwrap は元のエラーを返します
func (e *DecodeError) Unwrap() error {
	return e.Err
}
