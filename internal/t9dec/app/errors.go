package app

import "errors"

var (
	// ErrOpenInput は入力ファイルを開けなかった場合のエラー
	ErrOpenInput = errors.New("入力ファイルを開けませんでした")

	// ErrInputNotFound は入力ファイルが存在しない場合のエラー
	ErrInputNotFound = errors.New("入力ファイルが見つかりません")

	// ErrInputIsDirectory は入力にディレクトリが指定された場合のエラー
	ErrInputIsDirectory = errors.New("入力にディレクトリが指定されています")

	// ErrCreateOutput は出力ファイルを作成できなかった場合のエラー
	ErrCreateOutput = errors.New("出力ファイルを作成できませんでした")

	// ErrReadInput は入力の読み込みに失敗した場合のエラー
	ErrReadInput = errors.New("入力の読み込みに失敗しました")

	// ErrWriteOutput は出力の書き込みに失敗した場合のエラー
	ErrWriteOutput = errors.New("出力の書き込みに失敗しました")
)
