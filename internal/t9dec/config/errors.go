package config

import "errors"

var (
	// ErrLoadEnvFile は環境変数ファイルの読み込みに失敗した場合のエラー
	ErrLoadEnvFile = errors.New("環境変数ファイルの読み込みに失敗しました")

	// ErrInvalidLogFormat はログ形式が不正な場合のエラー
	ErrInvalidLogFormat = errors.New("ログ形式は text または json を指定してください")

	// ErrEmptyInputPath は入力ファイルが空文字列の場合のエラー
	ErrEmptyInputPath = errors.New("入力ファイルが指定されていません")

	// ErrEmptyOutputPath は出力ファイルが空文字列の場合のエラー
	ErrEmptyOutputPath = errors.New("出力ファイルが指定されていません")
)
