// Package models はデータモデルを定義します
package models

import "github.com/shiroemons/go-t9decode/pkg/t9"

// DecodedLine は1行分の変換結果を表します
type DecodedLine struct {
	Number int      // 行番号 (1始まり)
	Input  string   // 打鍵列
	Text   string   // 変換結果
	Stats  t9.Stats // 打鍵の集計
}

// Summary は1回の実行の集計を表します
type Summary struct {
	Lines   int // 読み込んだ行数
	Decoded int // 変換に成功した行数
	Failed  int // 変換に失敗した行数
}
