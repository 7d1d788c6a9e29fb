package fileutil

import "errors"

var (
	// ErrNotText は入力がテキストではない場合のエラー
	ErrNotText = errors.New("入力がテキストファイルではありません")

	// ErrUnknownEncoding は文字コード名が不明な場合のエラー
	ErrUnknownEncoding = errors.New("不明な文字コードです")

	// ErrWriteBOM はBOMの書き込みに失敗した場合のエラー
	ErrWriteBOM = errors.New("BOMの書き込みに失敗しました")

	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")
)
