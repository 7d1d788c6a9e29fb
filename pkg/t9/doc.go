// Package t9 は電話のテンキー (T9 配列) の打鍵列を平文に変換します。
//
// 入力として使用できる文字は '2'〜'9'、'0'、空白のみです。
// 同じキーを続けて押した回数で文字が決まり (例: "444" -> 'i')、
// 別のキーを押すか空白を入れるとその時点の打鍵がひとつの文字として確定します。
// 打鍵が確定した直後の空白は「間」として扱われ、出力には影響しません。
//
//	t9.DecodeString("44 444 44 444") // "hihi"
//	t9.DecodeString("227")           // "bp"
//
// 予測変換 (辞書による単語推測) は行いません。
package t9
