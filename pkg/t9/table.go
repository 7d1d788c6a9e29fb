package t9

import "strings"

// keypad は各数字キーに割り当てられた文字です。
// '0' は空白1文字、'1' には何も割り当てられていません。
var keypad = [10]string{
	0: " ",
	2: "abc",
	3: "def",
	4: "ghi",
	5: "jkl",
	6: "mno",
	7: "pqrs",
	8: "tuv",
	9: "wxyz",
}

// maxRunLength は最も長い有効な連打数です ('7' と '9' の4回)。
const maxRunLength = 4

// conversionTable は連打列 ("444" など) から出力文字への変換表です。
// パッケージ初期化時に一度だけ構築され、以降は読み取り専用です。
var conversionTable = buildConversionTable()

func buildConversionTable() map[string]byte {
	table := make(map[string]byte, 27)
	for d, letters := range keypad {
		key := byte('0' + d)
		for i := 0; i < len(letters); i++ {
			table[strings.Repeat(string(key), i+1)] = letters[i]
		}
	}
	return table
}

// Lookup は連打列に対応する文字を返します。
// 変換表に存在しない場合は false を返します。
func Lookup(run string) (byte, bool) {
	c, ok := conversionTable[run]
	return c, ok
}

// Table は変換表のコピーを返します。
func Table() map[string]byte {
	table := make(map[string]byte, len(conversionTable))
	for k, v := range conversionTable {
		table[k] = v
	}
	return table
}

func isKey(c byte) bool {
	return c >= '0' && c <= '9' && keypad[c-'0'] != ""
}
